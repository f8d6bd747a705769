package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/alnah/go-weeklysite/internal/config"
)

// envPrefix marks the tool's environment variables.
const envPrefix = "WEEKLYSITE_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // WEEKLYSITE_CONFIG: config file name or path
	ContentDir string // WEEKLYSITE_CONTENT_DIR: content directory
	OutputDir  string // WEEKLYSITE_OUTPUT_DIR: output directory
	Engine     string // WEEKLYSITE_ENGINE: pandoc or goldmark
	BasePath   string // WEEKLYSITE_BASE_PATH: URL prefix
	SiteURL    string // WEEKLYSITE_SITE_URL: absolute origin, enables the feed
	PandocPath string // WEEKLYSITE_PANDOC_PATH: pandoc binary
}

// knownEnvVars lists valid WEEKLYSITE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"WEEKLYSITE_CONFIG":      true,
	"WEEKLYSITE_CONTENT_DIR": true,
	"WEEKLYSITE_OUTPUT_DIR":  true,
	"WEEKLYSITE_ENGINE":      true,
	"WEEKLYSITE_BASE_PATH":   true,
	"WEEKLYSITE_SITE_URL":    true,
	"WEEKLYSITE_PANDOC_PATH": true,
	"WEEKLYSITE_CONTAINER":   true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	return &envConfig{
		ConfigPath: getenv("WEEKLYSITE_CONFIG"),
		ContentDir: getenv("WEEKLYSITE_CONTENT_DIR"),
		OutputDir:  getenv("WEEKLYSITE_OUTPUT_DIR"),
		Engine:     getenv("WEEKLYSITE_ENGINE"),
		BasePath:   getenv("WEEKLYSITE_BASE_PATH"),
		SiteURL:    getenv("WEEKLYSITE_SITE_URL"),
		PandocPath: getenv("WEEKLYSITE_PANDOC_PATH"),
	}
}

// warnUnknownEnvVars logs warnings for unrecognized WEEKLYSITE_* variables.
// Helps catch typos like WEEKLYSITE_OUTPUT instead of WEEKLYSITE_OUTPUT_DIR.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	var unknown []string
	for _, kv := range environ {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig applies set environment variables over the config file.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via applyFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.ContentDir != "" {
		cfg.Content.Dir = env.ContentDir
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Engine != "" {
		cfg.Render.Engine = env.Engine
	}
	if env.BasePath != "" {
		cfg.Site.BasePath = env.BasePath
	}
	if env.SiteURL != "" {
		cfg.Site.URL = env.SiteURL
	}
	if env.PandocPath != "" {
		cfg.Render.PandocPath = env.PandocPath
	}
}

// configOverrides are the flag values that replace config fields when set.
type configOverrides struct {
	content   string
	output    string
	engine    string
	basePath  string
	style     string
	assetPath string
}

// applyFlags applies non-empty flag values over cfg.
func applyFlags(o configOverrides, cfg *config.Config) {
	if o.content != "" {
		cfg.Content.Dir = o.content
	}
	if o.output != "" {
		cfg.Output.Dir = o.output
	}
	if o.engine != "" {
		cfg.Render.Engine = o.engine
	}
	if o.basePath != "" {
		cfg.Site.BasePath = o.basePath
	}
	if o.style != "" {
		cfg.Assets.Style = o.style
	}
	if o.assetPath != "" {
		cfg.Assets.BasePath = o.assetPath
	}
}

// resolveConfig loads the config file named by the flag or environment,
// then layers environment variables and flags over it.
func resolveConfig(configFlag string, o configOverrides, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig(env.Getenv)

	path := configFlag
	if path == "" {
		path = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = config.LoadConfig(path); err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	applyFlags(o, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
