package main

import (
	"fmt"
	"strings"

	"github.com/alnah/go-weeklysite/internal/content"
	"github.com/alnah/go-weeklysite/internal/pages"
	"github.com/alnah/go-weeklysite/internal/search"
)

// runSearch prints the items matching a query without rendering anything.
func runSearch(args []string, env *Environment) error {
	flags, query, err := parseSearchFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(flags.common.config, configOverrides{content: flags.site.content}, env)
	if err != nil {
		return err
	}

	items, err := content.LoadItems(cfg.ItemsPath(), cfg.Content.Extensions)
	if err != nil {
		return err
	}

	matches := search.Filter(search.Entries(content.SortItems(items)), query)
	if flags.limit > 0 && len(matches) > flags.limit {
		matches = matches[:flags.limit]
	}

	printSearchResults(env, matches, flags.common.quiet)
	return nil
}

// printSearchResults writes one block per match and a count line.
func printSearchResults(env *Environment, matches []search.Entry, quiet bool) {
	s := newStyles(env.Stdout)
	for _, e := range matches {
		line := s.Title.Render(e.Title)
		if e.Evidence != "" {
			line += " [" + e.Evidence + "]"
		}
		if e.Score != "" {
			line += " " + s.Score.Render("得分："+e.Score)
		}
		fmt.Fprintln(env.Stdout, line)
		fmt.Fprintf(env.Stdout, "  %s\n", s.Dim.Render(pages.ItemPath(e.Slug)))
		if len(e.Tags) > 0 {
			fmt.Fprintf(env.Stdout, "  %s\n", strings.Join(content.UniqueTags(e.Tags), ", "))
		}
	}
	if !quiet {
		fmt.Fprintf(env.Stdout, "共找到 %d 条结果\n", len(matches))
	}
}
