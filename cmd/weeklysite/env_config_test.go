package main

// Notes:
// - loadEnvConfig and resolveConfig take getenv via Environment, so these
//   tests run in parallel without t.Setenv.
// - resolveConfig: we test precedence flags > env > file > defaults.

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-weeklysite/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	vars := map[string]string{
		"WEEKLYSITE_CONFIG":      "site.yaml",
		"WEEKLYSITE_CONTENT_DIR": "/content",
		"WEEKLYSITE_OUTPUT_DIR":  "/out",
		"WEEKLYSITE_ENGINE":      "goldmark",
		"WEEKLYSITE_BASE_PATH":   "/weekly",
		"WEEKLYSITE_SITE_URL":    "https://example.com",
		"WEEKLYSITE_PANDOC_PATH": "/opt/pandoc",
	}
	got := loadEnvConfig(func(k string) string { return vars[k] })
	want := &envConfig{
		ConfigPath: "site.yaml",
		ContentDir: "/content",
		OutputDir:  "/out",
		Engine:     "goldmark",
		BasePath:   "/weekly",
		SiteURL:    "https://example.com",
		PandocPath: "/opt/pandoc",
	}
	if *got != *want {
		t.Errorf("loadEnvConfig() = %+v, want %+v", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf, []string{
		"WEEKLYSITE_OUTPUT=x",
		"WEEKLYSITE_ENGINE=pandoc",
		"WEEKLYSITE_ENGIN=pandoc",
		"HOME=/root",
	})

	out := buf.String()
	if strings.Count(out, "warning:") != 2 {
		t.Errorf("want 2 warnings, got:\n%s", out)
	}
	if strings.Index(out, "WEEKLYSITE_ENGIN ") > strings.Index(out, "WEEKLYSITE_OUTPUT ") {
		t.Error("warnings not sorted")
	}
	if strings.Contains(out, "WEEKLYSITE_ENGINE ") || strings.Contains(out, "HOME") {
		t.Errorf("known or foreign variable reported:\n%s", out)
	}
}

// ---------------------------------------------------------------------------
// TestResolveConfig - Precedence
// ---------------------------------------------------------------------------

func TestResolveConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "site.yaml")
	yaml := "site:\n  title: File Title\n  basePath: /file\nrender:\n  engine: pandoc\noutput:\n  dir: file-out\ncontent:\n  dir: file-content\n"
	if err := os.WriteFile(cfgPath, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("defaults without file", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		cfg, err := resolveConfig("", configOverrides{}, env.Environment)
		if err != nil {
			t.Fatalf("resolveConfig() unexpected error: %v", err)
		}
		if cfg.Output.Dir != config.DefaultOutputDir || cfg.Content.Dir != config.DefaultContentDir {
			t.Errorf("cfg = %+v, want defaults", cfg)
		}
	})

	t.Run("env overrides file, flags override env", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		env.vars["WEEKLYSITE_CONFIG"] = cfgPath
		env.vars["WEEKLYSITE_ENGINE"] = "goldmark"
		env.vars["WEEKLYSITE_OUTPUT_DIR"] = "env-out"

		cfg, err := resolveConfig("", configOverrides{output: "flag-out"}, env.Environment)
		if err != nil {
			t.Fatalf("resolveConfig() unexpected error: %v", err)
		}
		if cfg.Site.Title != "File Title" || cfg.Site.BasePath != "/file" {
			t.Errorf("site = %+v, want values from file", cfg.Site)
		}
		if cfg.Render.Engine != "goldmark" {
			t.Errorf("engine = %q, want goldmark from env", cfg.Render.Engine)
		}
		if cfg.Output.Dir != "flag-out" {
			t.Errorf("output = %q, want flag-out", cfg.Output.Dir)
		}
		if cfg.Content.Dir != "file-content" {
			t.Errorf("content = %q, want file-content", cfg.Content.Dir)
		}
	})

	t.Run("flag config wins over env config", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		env.vars["WEEKLYSITE_CONFIG"] = filepath.Join(dir, "missing.yaml")

		cfg, err := resolveConfig(cfgPath, configOverrides{}, env.Environment)
		if err != nil {
			t.Fatalf("resolveConfig() unexpected error: %v", err)
		}
		if cfg.Site.Title != "File Title" {
			t.Errorf("title = %q, want File Title", cfg.Site.Title)
		}
	})

	t.Run("invalid override fails validation", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		_, err := resolveConfig("", configOverrides{basePath: "/a b"}, env.Environment)
		if !errors.Is(err, config.ErrInvalidValue) {
			t.Errorf("resolveConfig() error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		_, err := resolveConfig(filepath.Join(dir, "nope.yaml"), configOverrides{}, env.Environment)
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("resolveConfig() error = %v, want ErrConfigNotFound", err)
		}
	})
}
