package main

import (
	"context"
	"fmt"

	weeklysite "github.com/alnah/go-weeklysite"
	"github.com/alnah/go-weeklysite/internal/config"
	"github.com/alnah/go-weeklysite/internal/render"
)

// runBuild generates the site.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(flags.common.config, configOverrides{
		content:   flags.site.content,
		output:    flags.output,
		engine:    flags.engine,
		basePath:  flags.site.basePath,
		style:     flags.site.style,
		assetPath: flags.site.assetPath,
	}, env)
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, flags.common)

	renderer, err := env.NewRenderer(render.Options{
		Engine:     cfg.Render.Engine,
		PandocPath: cfg.Render.PandocPath,
		Sanitize:   cfg.Render.Sanitize,
	})
	if err != nil {
		return err
	}

	gen, err := weeklysite.NewGenerator(
		weeklysite.WithRenderer(renderer),
		weeklysite.WithLogger(logger),
		weeklysite.WithAssetPath(cfg.Assets.BasePath),
		weeklysite.WithStyle(cfg.Assets.Style),
		weeklysite.WithTemplateSet(cfg.Assets.Templates),
	)
	if err != nil {
		return err
	}

	logger.Debug("building site",
		"content", cfg.Content.Dir,
		"output", cfg.Output.Dir,
		"engine", cfg.Render.Engine)

	res, err := gen.Generate(ctx, generatorInput(cfg))
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		printBuildResult(env, res)
	}
	return nil
}

// generatorInput maps the resolved config onto one generator run.
func generatorInput(cfg *config.Config) weeklysite.Input {
	return weeklysite.Input{
		ItemsDir:   cfg.ItemsPath(),
		WeeksDir:   cfg.WeeksPath(),
		Extensions: cfg.Content.Extensions,
		OutputDir:  cfg.Output.Dir,
		Site: weeklysite.Site{
			Title:       cfg.Site.Title,
			BasePath:    cfg.Site.BasePath,
			URL:         cfg.Site.URL,
			Description: cfg.Site.Description,
			MathJax:     cfg.Site.MathJax,
		},
	}
}

// printBuildResult outputs the build summary.
func printBuildResult(env *Environment, res *weeklysite.Result) {
	s := newStyles(env.Stdout)
	fmt.Fprintf(env.Stdout, "%s %s\n", s.Success.Render("Built"), res.OutputDir)
	fmt.Fprintf(env.Stdout, "  %d items, %d weeks, %d tags, %d files\n",
		res.Items, res.Weeks, res.Tags, len(res.Files))
	if !res.Home {
		fmt.Fprintln(env.Stdout, s.Warn.Render("  no weeks found: home page skipped"))
	}
	if res.Feed {
		fmt.Fprintln(env.Stdout, s.Dim.Render("  feed.xml written"))
	}
}
