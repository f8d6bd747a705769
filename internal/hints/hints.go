// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-weeklysite/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// inCI reports whether a common CI provider variable is set.
func inCI() bool {
	return os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""
}

// ForConverterNotFound returns hints for a missing pandoc binary.
// Detects CI/Docker environment and suggests how to get pandoc there.
func ForConverterNotFound() string {
	var hints []string

	if inCI() || IsInContainer() {
		hints = append(hints, "install pandoc in the build image (apt-get install pandoc)")
	} else {
		hints = append(hints, "install pandoc from https://pandoc.org/installing.html")
	}

	if os.Getenv("WEEKLYSITE_ENGINE") == "" {
		hints = append(hints, "or use --engine goldmark for the built-in converter")
	}

	return formatHints(hints)
}

// ForConversion returns a hint for a record pandoc rejected.
func ForConversion() string {
	return format("run with --verbose to see which record was being rendered")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/weeklysite/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	marker := filepath.ToSlash(filepath.Join(".config", "weeklysite"))
	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), marker) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForContentDirectory returns a hint for a missing items or weeks directory.
func ForContentDirectory() string {
	return format("set content.dir in the config or pass --content")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForUnsafeOutputDirectory returns a hint for a refused output directory.
func ForUnsafeOutputDirectory() string {
	return format("choose a dedicated directory such as website/out; it is deleted on every build")
}

// ForDuplicateSlug returns a hint for two records sharing a slug.
func ForDuplicateSlug() string {
	return format("give one of the files a distinct slug: field")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
