package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	weeklysite "github.com/alnah/go-weeklysite"
	"github.com/alnah/go-weeklysite/internal/assets"
	"github.com/alnah/go-weeklysite/internal/config"
	"github.com/alnah/go-weeklysite/internal/content"
	"github.com/alnah/go-weeklysite/internal/fileutil"
	"github.com/alnah/go-weeklysite/internal/hints"
	"github.com/alnah/go-weeklysite/internal/pages"
	"github.com/alnah/go-weeklysite/internal/render"
)

// Exit codes for the weeklysite CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // Site generated
	ExitGeneral   = 1 // General/unexpected error
	ExitUsage     = 2 // Invalid flags, config, or content
	ExitIO        = 3 // Missing directory, permission denied, write failure
	ExitConverter = 4 // Markdown converter missing or failed
)

// ErrUsage marks invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

func usageError(err error) error {
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrUsage}, args...)...)
}

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Converter errors (exit 4)
	if errors.Is(err, render.ErrConversion) ||
		errors.Is(err, render.ErrConverterNotFound) {
		return ExitConverter
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, render.ErrUnknownEngine) ||
		errors.Is(err, content.ErrInvalidSlug) ||
		errors.Is(err, content.ErrDuplicateSlug) ||
		errors.Is(err, weeklysite.ErrUnsafeOutputDir) ||
		errors.Is(err, weeklysite.ErrInvalidAssetPath) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrTemplateSetNotFound) ||
		errors.Is(err, assets.ErrIncompleteTemplateSet) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, pages.ErrTemplateParse) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, content.ErrMissingDir) ||
		errors.Is(err, weeklysite.ErrWriteOutput) ||
		errors.Is(err, fileutil.ErrPathEscapes) ||
		errors.Is(err, assets.ErrAssetRead) {
		return ExitIO
	}

	return ExitGeneral
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, render.ErrConverterNotFound):
		return hints.ForConverterNotFound()
	case errors.Is(err, render.ErrConversion):
		return hints.ForConversion()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(triedPaths(err))
	case errors.Is(err, content.ErrMissingDir):
		return hints.ForContentDirectory()
	case errors.Is(err, weeklysite.ErrUnsafeOutputDir):
		return hints.ForUnsafeOutputDirectory()
	case errors.Is(err, weeklysite.ErrWriteOutput):
		return hints.ForOutputDirectory()
	case errors.Is(err, content.ErrDuplicateSlug):
		return hints.ForDuplicateSlug()
	case errors.Is(err, assets.ErrStyleNotFound):
		return hints.ForStyleNotFound([]string{assets.DefaultStyleName})
	}
	return ""
}

// triedPaths extracts the searched locations from a config lookup error.
func triedPaths(err error) []string {
	_, list, ok := strings.Cut(err.Error(), "tried ")
	if !ok {
		return nil
	}
	return strings.Split(list, ", ")
}
