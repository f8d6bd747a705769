// Package config loads and validates the site generator's YAML
// configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-weeklysite/internal/fileutil"
	"github.com/alnah/go-weeklysite/internal/render"
	"github.com/alnah/go-weeklysite/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 500
	MaxURLLength         = 2048 // Browser limit
	MaxPathLength        = 4096
	MaxBasePathLength    = 200
	MaxExtensionLength   = 16
	MaxNameLength        = 64
)

// appDir is the directory under the user config dir searched for configs.
const appDir = "weeklysite"

// Defaults.
const (
	DefaultSiteTitle  = "AI 周报站点"
	DefaultContentDir = "content"
	DefaultItemsDir   = "items"
	DefaultWeeksDir   = "weeks"
	DefaultOutputDir  = "website/out"
	DefaultPandocPath = "pandoc"
	DefaultStyle      = "default"
	DefaultTemplates  = "default"
)

// DefaultExtensions are the record file extensions read by default.
var DefaultExtensions = []string{".mdx", ".md"}

// Config holds all configuration for one site build.
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Content ContentConfig `yaml:"content"`
	Output  OutputConfig  `yaml:"output"`
	Render  RenderConfig  `yaml:"render"`
	Assets  AssetsConfig  `yaml:"assets"`
}

// SiteConfig defines what every page shares.
type SiteConfig struct {
	Title       string `yaml:"title"`
	BasePath    string `yaml:"basePath"`    // URL prefix, e.g. "/weekly" for project pages
	URL         string `yaml:"url"`         // Absolute site origin; empty disables the feed
	Description string `yaml:"description"` // Feed description
	MathJax     bool   `yaml:"mathjax"`
}

// ContentConfig locates the record files.
type ContentConfig struct {
	Dir        string   `yaml:"dir"`
	ItemsDir   string   `yaml:"itemsDir"` // Relative to Dir
	WeeksDir   string   `yaml:"weeksDir"` // Relative to Dir
	Extensions []string `yaml:"extensions"`
}

// OutputConfig defines the output destination.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Cleared and rewritten on every build
}

// RenderConfig selects the markdown converter.
type RenderConfig struct {
	Engine     string `yaml:"engine"` // "pandoc" or "goldmark"
	PandocPath string `yaml:"pandocPath"`
	Sanitize   bool   `yaml:"sanitize"`
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath  string `yaml:"basePath"`  // Empty = use embedded assets
	Style     string `yaml:"style"`     // Style name or CSS file path
	Templates string `yaml:"templates"` // Template set name
}

// ItemsPath returns the items directory.
func (c *Config) ItemsPath() string {
	return filepath.Join(c.Content.Dir, c.Content.ItemsDir)
}

// WeeksPath returns the weeks directory.
func (c *Config) WeeksPath() string {
	return filepath.Join(c.Content.Dir, c.Content.WeeksDir)
}

// Validate checks enumerations, path forms and field lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"site.title", c.Site.Title, MaxTitleLength},
		{"site.basePath", c.Site.BasePath, MaxBasePathLength},
		{"site.url", c.Site.URL, MaxURLLength},
		{"site.description", c.Site.Description, MaxDescriptionLength},
		{"content.dir", c.Content.Dir, MaxPathLength},
		{"content.itemsDir", c.Content.ItemsDir, MaxPathLength},
		{"content.weeksDir", c.Content.WeeksDir, MaxPathLength},
		{"output.dir", c.Output.Dir, MaxPathLength},
		{"render.pandocPath", c.Render.PandocPath, MaxPathLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"assets.style", c.Assets.Style, MaxPathLength},
		{"assets.templates", c.Assets.Templates, MaxNameLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Render.Engine != "" && !slices.Contains(render.Engines, strings.ToLower(c.Render.Engine)) {
		return fmt.Errorf("%w: render.engine %q (must be one of %s)",
			ErrInvalidValue, c.Render.Engine, strings.Join(render.Engines, ", "))
	}

	if strings.ContainsAny(c.Site.BasePath, "?#\\ ") || strings.Contains(c.Site.BasePath, "..") {
		return fmt.Errorf("%w: site.basePath %q", ErrInvalidValue, c.Site.BasePath)
	}

	if c.Site.URL != "" && !strings.HasPrefix(c.Site.URL, "http://") && !strings.HasPrefix(c.Site.URL, "https://") {
		return fmt.Errorf("%w: site.url %q (must start with http:// or https://)", ErrInvalidValue, c.Site.URL)
	}

	for i, ext := range c.Content.Extensions {
		name := fmt.Sprintf("content.extensions[%d]", i)
		if err := validateFieldLength(name, ext, MaxExtensionLength); err != nil {
			return err
		}
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 || strings.ContainsAny(ext, "/\\") {
			return fmt.Errorf("%w: %s %q (must look like \".md\")", ErrInvalidValue, name, ext)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{Title: DefaultSiteTitle},
		Content: ContentConfig{
			Dir:        DefaultContentDir,
			ItemsDir:   DefaultItemsDir,
			WeeksDir:   DefaultWeeksDir,
			Extensions: slices.Clone(DefaultExtensions),
		},
		Output: OutputConfig{Dir: DefaultOutputDir},
		Render: RenderConfig{Engine: render.EnginePandoc, PandocPath: DefaultPandocPath},
		Assets: AssetsConfig{Style: DefaultStyle, Templates: DefaultTemplates},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys absent from the file keep their defaults. Returns error if the file
// is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/weeklysite/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, appDir, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
