package main

import (
	"bytes"
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseBuildFlags - Build flag parsing
// ---------------------------------------------------------------------------

func TestParseBuildFlags(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	f, err := parseBuildFlags([]string{
		"-o", "out", "--engine", "goldmark", "--content", "c", "--base-path", "/weekly",
		"--style", "dark", "--asset-path", "assets", "-c", "site", "-v",
	}, &buf)
	if err != nil {
		t.Fatalf("parseBuildFlags() unexpected error: %v", err)
	}

	want := buildFlags{
		common: commonFlags{config: "site", verbose: true},
		site:   siteFlags{content: "c", basePath: "/weekly", assetPath: "assets", style: "dark"},
		output: "out",
		engine: "goldmark",
	}
	if *f != want {
		t.Errorf("parseBuildFlags() = %+v, want %+v", *f, want)
	}
}

func TestParseFlagErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		parse func() error
		want  error
	}{
		{
			name:  "build help",
			parse: func() error { _, err := parseBuildFlags([]string{"-h"}, &bytes.Buffer{}); return err },
			want:  errHelpRequested,
		},
		{
			name:  "build unknown flag",
			parse: func() error { _, err := parseBuildFlags([]string{"--pdf"}, &bytes.Buffer{}); return err },
			want:  ErrUsage,
		},
		{
			name:  "search missing query",
			parse: func() error { _, _, err := parseSearchFlags(nil, &bytes.Buffer{}); return err },
			want:  ErrUsage,
		},
		{
			name:  "search help",
			parse: func() error { _, _, err := parseSearchFlags([]string{"--help"}, &bytes.Buffer{}); return err },
			want:  errHelpRequested,
		},
		{
			name:  "doctor unknown flag",
			parse: func() error { _, err := parseDoctorFlags([]string{"--engine", "x"}, &bytes.Buffer{}); return err },
			want:  ErrUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.parse(); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseSearchFlags(t *testing.T) {
	t.Parallel()

	f, query, err := parseSearchFlags([]string{"--limit", "3", "agents"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseSearchFlags() unexpected error: %v", err)
	}
	if query != "agents" || f.limit != 3 {
		t.Errorf("parseSearchFlags() = %q, limit %d", query, f.limit)
	}
}

func TestIsCommand(t *testing.T) {
	t.Parallel()

	for _, c := range commands {
		if !isCommand(c) {
			t.Errorf("isCommand(%q) = false", c)
		}
	}
	for _, arg := range []string{"convert", "-o", "", "Build"} {
		if isCommand(arg) {
			t.Errorf("isCommand(%q) = true", arg)
		}
	}
}
