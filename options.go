package weeklysite

import (
	"context"
	"log/slog"
)

// BodyRenderer turns a markdown record body into an HTML fragment.
type BodyRenderer interface {
	Render(ctx context.Context, markdown string) (string, error)
}

// Option configures a Generator.
type Option func(*Generator)

// WithRenderer sets the body renderer. Defaults to pandoc.
func WithRenderer(r BodyRenderer) Option {
	return func(g *Generator) {
		g.renderer = r
	}
}

// WithLogger sets the logger for progress messages. Defaults to discarding.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithAssetPath sets a directory of custom styles and templates, tried
// before the embedded assets.
func WithAssetPath(path string) Option {
	return func(g *Generator) {
		g.assetPath = path
	}
}

// WithStyle selects the stylesheet by name or file path.
func WithStyle(nameOrPath string) Option {
	return func(g *Generator) {
		g.style = nameOrPath
	}
}

// WithTemplateSet selects the template set by name.
func WithTemplateSet(name string) Option {
	return func(g *Generator) {
		g.templateSet = name
	}
}
