package weeklysite

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"github.com/alnah/go-weeklysite/internal/assets"
	"github.com/alnah/go-weeklysite/internal/content"
	"github.com/alnah/go-weeklysite/internal/feed"
	"github.com/alnah/go-weeklysite/internal/fileutil"
	"github.com/alnah/go-weeklysite/internal/pages"
	"github.com/alnah/go-weeklysite/internal/render"
)

// Compile-time interface implementation checks.
var (
	_ BodyRenderer       = (*render.Renderer)(nil)
	_ assets.AssetLoader = (*assets.AssetResolver)(nil)
)

// Site describes what every page and the feed share.
type Site struct {
	Title       string
	BasePath    string // URL prefix, e.g. "/weekly"
	URL         string // Absolute origin; empty disables the feed
	Description string
	MathJax     bool
}

// Input locates the corpus and the output directory of one run.
type Input struct {
	ItemsDir   string
	WeeksDir   string
	Extensions []string // Empty = content.DefaultExtensions
	OutputDir  string
	Site       Site
}

// Result summarizes a completed run.
type Result struct {
	OutputDir string
	Items     int
	Weeks     int
	Tags      int
	Home      bool     // Home page written (at least one week)
	Feed      bool     // feed.xml written
	Files     []string // Output paths, sorted
}

// site is the rendered site held in memory before it is written.
type site struct {
	files  pages.Files
	result Result
}

// Generator builds the website from the record corpus.
// Create with NewGenerator and call Generate for each build.
type Generator struct {
	renderer    BodyRenderer
	logger      *slog.Logger
	assetPath   string
	style       string
	templateSet string
	resolver    *assets.AssetResolver
}

// NewGenerator creates a Generator. Without WithRenderer it converts bodies
// with pandoc from PATH.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		logger:      slog.New(slog.DiscardHandler),
		style:       assets.DefaultStyleName,
		templateSet: assets.DefaultTemplateSetName,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.renderer == nil {
		r, err := render.New(render.Options{Engine: render.EnginePandoc})
		if err != nil {
			return nil, err
		}
		g.renderer = r
	}

	resolver, err := assets.NewAssetResolver(g.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	g.resolver = resolver

	return g, nil
}

// Generate renders the whole site and writes it to in.OutputDir. The output
// directory is cleared only after every page rendered successfully.
func (g *Generator) Generate(ctx context.Context, in Input) (*Result, error) {
	if err := checkOutputDir(in); err != nil {
		return nil, err
	}

	s, err := g.build(ctx, in)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := fileutil.ResetDir(in.OutputDir, in.ItemsDir, in.WeeksDir); err != nil {
		if errors.Is(err, fileutil.ErrUnsafeDir) {
			return nil, fmt.Errorf("%w: %v", ErrUnsafeOutputDir, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	for _, path := range s.result.Files {
		if err := fileutil.WriteFile(in.OutputDir, path, s.files[path]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}

	g.logger.Info("site generated",
		"output", in.OutputDir,
		"items", s.result.Items,
		"weeks", s.result.Weeks,
		"tags", s.result.Tags,
		"files", len(s.result.Files))

	res := s.result
	return &res, nil
}

// Render builds every output file in memory without touching the disk.
func (g *Generator) Render(ctx context.Context, in Input) (pages.Files, error) {
	s, err := g.build(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.files, nil
}

func checkOutputDir(in Input) error {
	if err := fileutil.CheckResettable(in.OutputDir, in.ItemsDir, in.WeeksDir); err != nil {
		return fmt.Errorf("%w: %v", ErrUnsafeOutputDir, err)
	}
	return nil
}

func (g *Generator) build(ctx context.Context, in Input) (*site, error) {
	items, err := content.LoadItems(in.ItemsDir, in.Extensions)
	if err != nil {
		return nil, err
	}
	items = content.SortItems(items)

	weeks, err := content.LoadWeeks(in.WeeksDir, in.Extensions)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("records loaded", "items", len(items), "weeks", len(weeks))

	builder, err := g.newBuilder(in.Site)
	if err != nil {
		return nil, err
	}

	corpus := pages.Corpus{
		Items:      items,
		Weeks:      weeks,
		ItemBodies: make(map[string]template.HTML, len(items)),
		WeekBodies: make(map[string]template.HTML, len(weeks)),
	}

	for _, item := range items {
		body, err := g.render(ctx, item.Body, in.Site.BasePath)
		if err != nil {
			return nil, fmt.Errorf("rendering item %s: %w", item.Source, err)
		}
		corpus.ItemBodies[item.Slug] = body
		g.logger.Debug("item rendered", "slug", item.Slug, "source", item.Source)
	}

	for _, week := range weeks {
		body, err := g.render(ctx, week.Body, in.Site.BasePath)
		if err != nil {
			return nil, fmt.Errorf("rendering week %s: %w", week.Source, err)
		}
		corpus.WeekBodies[week.Slug] = body
		g.logger.Debug("week rendered", "slug", week.Slug, "source", week.Source)
	}

	if latest, ok := content.LatestWeek(weeks); ok {
		home, err := g.homeInput(ctx, latest, in.Site.BasePath)
		if err != nil {
			return nil, err
		}
		corpus.Home = home
	}

	files, err := builder.BuildAll(corpus)
	if err != nil {
		return nil, err
	}

	withFeed := in.Site.URL != ""
	if withFeed {
		xml, err := feed.Build(feed.Options{
			Title:       builder.Site().Title,
			Description: in.Site.Description,
			SiteURL:     in.Site.URL,
			BasePath:    builder.Site().BasePath,
		}, weeks)
		if err != nil {
			return nil, err
		}
		files[feed.Path] = []byte(xml)
	}

	return &site{
		files: files,
		result: Result{
			OutputDir: in.OutputDir,
			Items:     len(items),
			Weeks:     len(weeks),
			Tags:      len(content.GroupByTag(items)),
			Home:      corpus.Home != nil,
			Feed:      withFeed,
			Files:     files.Paths(),
		},
	}, nil
}

// newBuilder loads the stylesheet and template set and prepares the page
// builder.
func (g *Generator) newBuilder(s Site) (*pages.Builder, error) {
	css, err := g.resolver.ResolveStyle(g.style)
	if err != nil {
		return nil, err
	}
	ts, err := g.resolver.LoadTemplateSet(g.templateSet)
	if err != nil {
		return nil, err
	}

	var feedURL string
	if s.URL != "" {
		feedURL = pages.NormalizeBasePath(s.BasePath) + "/" + feed.Path
	}

	return pages.NewBuilder(pages.Options{
		SiteTitle:  s.Title,
		BasePath:   s.BasePath,
		Stylesheet: css,
		MathJax:    s.MathJax,
		FeedURL:    feedURL,
		Templates:  ts,
	})
}

// homeInput renders the TL;DR and action sections of the latest week.
func (g *Generator) homeInput(ctx context.Context, latest content.Week, basePath string) (*pages.HomeInput, error) {
	sections := content.ExtractSections(latest.Body)
	home := &pages.HomeInput{Week: latest}

	var err error
	if home.TLDR, err = g.render(ctx, sections.TLDR, basePath); err != nil {
		return nil, fmt.Errorf("rendering home summary of %s: %w", latest.Source, err)
	}
	if home.Actions, err = g.render(ctx, sections.Actions, basePath); err != nil {
		return nil, fmt.Errorf("rendering home actions of %s: %w", latest.Source, err)
	}
	return home, nil
}

// render converts markdown to trusted HTML and prefixes root-relative links
// with basePath. Blank input renders to "".
func (g *Generator) render(ctx context.Context, markdown, basePath string) (template.HTML, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}
	out, err := g.renderer.Render(ctx, markdown)
	if err != nil {
		return "", err
	}
	if out, err = pages.PrefixRootLinks(out, basePath); err != nil {
		return "", fmt.Errorf("%w: %v", render.ErrConversion, err)
	}
	return template.HTML(out), nil // #nosec G203 -- converter output is the page body
}
