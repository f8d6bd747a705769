package main

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor = lipgloss.Color("#2DA44E") // Green
	titleColor  = lipgloss.Color("#0969DA") // Blue
	scoreColor  = lipgloss.Color("#F778BA") // Pink
	warnColor   = lipgloss.Color("#D29922") // Orange
	errorColor  = lipgloss.Color("#CF222E") // Red
	dimColor    = lipgloss.Color("#6E7681") // Gray
)

// styles renders terminal output. Styles are bound to the writer's
// renderer, so output to a pipe or file stays plain text.
type styles struct {
	Success lipgloss.Style
	Title   lipgloss.Style
	Score   lipgloss.Style
	Warn    lipgloss.Style
	Error   lipgloss.Style
	Dim     lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		Success: r.NewStyle().Foreground(accentColor).Bold(true),
		Title:   r.NewStyle().Foreground(titleColor).Bold(true),
		Score:   r.NewStyle().Foreground(scoreColor),
		Warn:    r.NewStyle().Foreground(warnColor),
		Error:   r.NewStyle().Foreground(errorColor).Bold(true),
		Dim:     r.NewStyle().Foreground(dimColor),
	}
}

// newLogger returns a text logger on w. quiet keeps warnings and errors,
// verbose adds per-record debug lines.
func newLogger(w io.Writer, f commonFlags) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case f.quiet:
		level = slog.LevelWarn
	case f.verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
