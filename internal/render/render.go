package render

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for body conversion.
var (
	ErrConversion        = errors.New("markdown conversion failed")
	ErrConverterNotFound = errors.New("markdown converter not found")
	ErrUnknownEngine     = errors.New("unknown render engine")
	ErrNilConverter      = errors.New("converter cannot be nil")
)

// Engine names accepted by New.
const (
	EnginePandoc   = "pandoc"
	EngineGoldmark = "goldmark"
)

// Engines lists the supported engine names.
var Engines = []string{EnginePandoc, EngineGoldmark}

// Converter turns markdown into an HTML fragment.
type Converter interface {
	ToHTML(ctx context.Context, markdown string) (string, error)
}

// Options selects and configures the converter built by New.
type Options struct {
	Engine     string
	PandocPath string
	Sanitize   bool
}

// Renderer runs the preprocess, convert and sanitize stages.
type Renderer struct {
	pre       *Preprocessor
	converter Converter
	sanitizer *Sanitizer
}

// NewRenderer wraps converter. sanitizer may be nil.
func NewRenderer(converter Converter, sanitizer *Sanitizer) (*Renderer, error) {
	if converter == nil {
		return nil, ErrNilConverter
	}
	return &Renderer{pre: &Preprocessor{}, converter: converter, sanitizer: sanitizer}, nil
}

// New builds a Renderer for opts.Engine. An empty engine selects pandoc.
func New(opts Options) (*Renderer, error) {
	var converter Converter
	switch strings.ToLower(strings.TrimSpace(opts.Engine)) {
	case "", EnginePandoc:
		converter = NewPandocConverter(opts.PandocPath)
	case EngineGoldmark:
		converter = NewGoldmarkConverter()
	default:
		return nil, fmt.Errorf("%w: %q (expected one of %s)", ErrUnknownEngine, opts.Engine, strings.Join(Engines, ", "))
	}

	var sanitizer *Sanitizer
	if opts.Sanitize {
		sanitizer = NewSanitizer()
	}
	return NewRenderer(converter, sanitizer)
}

// Render converts one record body.
func (r *Renderer) Render(ctx context.Context, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	markdown = r.pre.Process(markdown)
	out, err := r.converter.ToHTML(ctx, markdown)
	if err != nil {
		return "", err
	}
	if r.sanitizer != nil {
		out = r.sanitizer.Sanitize(out)
	}
	return out, nil
}
