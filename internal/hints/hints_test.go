package hints

// Notes:
// - ForConverterNotFound tests cannot use t.Parallel() because they:
//   1. Use t.Setenv() which modifies process environment
//   2. Modify the package-level IsInContainer variable

import (
	"strings"
	"testing"
)

func clearCI(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "WEEKLYSITE_ENGINE"} {
		t.Setenv(key, "")
	}
}

func TestForConverterNotFound_InCI(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return false }

	clearCI(t)
	t.Setenv("GITHUB_ACTIONS", "true")

	hint := ForConverterNotFound()

	if !strings.Contains(hint, "hint:") {
		t.Error("expected hint prefix")
	}
	if !strings.Contains(hint, "apt-get install pandoc") {
		t.Errorf("expected package install suggestion in CI, got %q", hint)
	}
	if !strings.Contains(hint, "--engine goldmark") {
		t.Error("expected --engine goldmark suggestion")
	}
}

func TestForConverterNotFound_InDocker(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return true }

	clearCI(t)

	if hint := ForConverterNotFound(); !strings.Contains(hint, "build image") {
		t.Errorf("expected build image suggestion in Docker, got %q", hint)
	}
}

func TestForConverterNotFound_Local(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return false }

	clearCI(t)

	hint := ForConverterNotFound()
	if !strings.Contains(hint, "pandoc.org") {
		t.Errorf("expected install link, got %q", hint)
	}
	if strings.Contains(hint, "apt-get") {
		t.Error("should not suggest apt-get outside CI/Docker")
	}
}

func TestForConverterNotFound_EngineFromEnv(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return false }

	clearCI(t)
	t.Setenv("WEEKLYSITE_ENGINE", "pandoc")

	if hint := ForConverterNotFound(); strings.Contains(hint, "--engine") {
		t.Errorf("should not suggest --engine when WEEKLYSITE_ENGINE is set, got %q", hint)
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		contains string
	}{
		{
			name:     "empty paths",
			paths:    []string{},
			contains: "--config",
		},
		{
			name:     "with paths",
			paths:    []string{"site.yaml", "/home/u/.config/weeklysite/site.yaml"},
			contains: "or create /home/u/.config/weeklysite/site.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)
			if !strings.Contains(hint, "hint:") {
				t.Error("expected hint prefix")
			}
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
		})
	}
}

func TestForStyleNotFound(t *testing.T) {
	t.Parallel()

	if hint := ForStyleNotFound(nil); hint != "" {
		t.Errorf("expected empty hint, got %q", hint)
	}
	if hint := ForStyleNotFound([]string{"default", "dark"}); !strings.Contains(hint, "default, dark") {
		t.Errorf("expected style list, got %q", hint)
	}
}

func TestFormat_Consistency(t *testing.T) {
	t.Parallel()

	// All hints should start with newline, spaces, and "hint:"
	hints := []string{
		ForConversion(),
		ForContentDirectory(),
		ForOutputDirectory(),
		ForUnsafeOutputDirectory(),
		ForDuplicateSlug(),
	}

	for _, h := range hints {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("hint format inconsistent: %q", h)
		}
	}
}
