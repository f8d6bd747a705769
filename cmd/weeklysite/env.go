package main

import (
	"context"
	"io"
	"os"

	weeklysite "github.com/alnah/go-weeklysite"
	"github.com/alnah/go-weeklysite/internal/render"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, the process environment, and converter construction.
type Environment struct {
	Stdout        io.Writer
	Stderr        io.Writer
	Getenv        func(string) string
	Environ       func() []string
	NewRenderer   func(render.Options) (weeklysite.BodyRenderer, error)
	PandocVersion func(ctx context.Context, path string) (string, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Environ: os.Environ,
		NewRenderer: func(opts render.Options) (weeklysite.BodyRenderer, error) {
			return render.New(opts)
		},
		PandocVersion: func(ctx context.Context, path string) (string, error) {
			return render.NewPandocConverter(path).Version(ctx)
		},
	}
}
