package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewAssetResolver(t *testing.T) {
	t.Parallel()

	t.Run("embedded only", func(t *testing.T) {
		t.Parallel()

		r, err := NewAssetResolver("")
		if err != nil {
			t.Fatalf("NewAssetResolver(\"\") error = %v", err)
		}
		if r.HasCustomLoader() {
			t.Error("HasCustomLoader() = true, want false")
		}
	})

	t.Run("custom path", func(t *testing.T) {
		t.Parallel()

		r, err := NewAssetResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}
		if !r.HasCustomLoader() {
			t.Error("HasCustomLoader() = false, want true")
		}
	})

	t.Run("invalid custom path", func(t *testing.T) {
		t.Parallel()

		_, err := NewAssetResolver(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewAssetResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestAssetResolver_LoadStyle(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeStyle(t, base, "default", "/* custom default */")
	writeStyle(t, base, "extra", "/* extra */")

	r, err := NewAssetResolver(base)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		style   string
		want    string
		wantErr error
	}{
		{name: "custom overrides embedded", style: "default", want: "/* custom default */"},
		{name: "custom only", style: "extra", want: "/* extra */"},
		{name: "missing everywhere", style: "nope", wantErr: ErrStyleNotFound},
		{name: "validation error is not fallen back", style: "../x", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.LoadStyle(tt.style)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadStyle(%q) error = %v, want %v", tt.style, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.style, err)
			}
			if got != tt.want {
				t.Errorf("LoadStyle(%q) = %q, want %q", tt.style, got, tt.want)
			}
		})
	}
}

func TestAssetResolver_LoadStyle_FallbackToEmbedded(t *testing.T) {
	t.Parallel()

	r, err := NewAssetResolver(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	got, err := r.LoadStyle(DefaultStyleName)
	if err != nil {
		t.Fatalf("LoadStyle(default) unexpected error: %v", err)
	}
	if !strings.Contains(got, ".tag-chip") {
		t.Error("fallback did not return the embedded stylesheet")
	}
}

func TestAssetResolver_ResolveStyle(t *testing.T) {
	t.Parallel()

	r, err := NewAssetResolver("")
	if err != nil {
		t.Fatal(err)
	}

	t.Run("empty selects default", func(t *testing.T) {
		t.Parallel()

		got, err := r.ResolveStyle("")
		if err != nil || !strings.Contains(got, ".tag-chip") {
			t.Errorf("ResolveStyle(\"\") = %d bytes, %v", len(got), err)
		}
	})

	t.Run("file path is read verbatim", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "globals.css")
		if err := os.WriteFile(path, []byte("main { gap: 1rem }"), 0o644); err != nil {
			t.Fatal(err)
		}
		got, err := r.ResolveStyle(path)
		if err != nil {
			t.Fatalf("ResolveStyle(path) unexpected error: %v", err)
		}
		if got != "main { gap: 1rem }" {
			t.Errorf("ResolveStyle(path) = %q", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := r.ResolveStyle(filepath.Join(t.TempDir(), "missing.css"))
		if !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("ResolveStyle(missing) error = %v, want ErrStyleNotFound", err)
		}
	})
}

func TestAssetResolver_LoadTemplateSet(t *testing.T) {
	t.Parallel()

	t.Run("embedded only", func(t *testing.T) {
		t.Parallel()

		r, _ := NewAssetResolver("")
		ts, err := r.LoadTemplateSet(DefaultTemplateSetName)
		if err != nil {
			t.Fatalf("LoadTemplateSet() unexpected error: %v", err)
		}
		if ts.Name != DefaultTemplateSetName {
			t.Errorf("Name = %q, want %q", ts.Name, DefaultTemplateSetName)
		}
	})

	t.Run("custom overrides embedded", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		writeTemplateSet(t, base, DefaultTemplateSetName, nil)

		r, err := NewAssetResolver(base)
		if err != nil {
			t.Fatal(err)
		}
		ts, err := r.LoadTemplateSet(DefaultTemplateSetName)
		if err != nil {
			t.Fatalf("LoadTemplateSet() unexpected error: %v", err)
		}
		if !strings.Contains(ts.Files[TemplateHome], "custom home") {
			t.Error("custom template set was not used")
		}
	})

	t.Run("falls back when custom set is absent", func(t *testing.T) {
		t.Parallel()

		r, err := NewAssetResolver(t.TempDir())
		if err != nil {
			t.Fatal(err)
		}
		if _, err := r.LoadTemplateSet(DefaultTemplateSetName); err != nil {
			t.Errorf("LoadTemplateSet() unexpected error: %v", err)
		}
	})

	t.Run("incomplete custom set is an error", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		writeTemplateSet(t, base, DefaultTemplateSetName, []string{TemplateLayout})

		r, err := NewAssetResolver(base)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := r.LoadTemplateSet(DefaultTemplateSetName); !errors.Is(err, ErrIncompleteTemplateSet) {
			t.Errorf("LoadTemplateSet() error = %v, want ErrIncompleteTemplateSet", err)
		}
	})
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want bool
	}{
		{ErrStyleNotFound, true},
		{ErrTemplateSetNotFound, true},
		{ErrIncompleteTemplateSet, false},
		{ErrInvalidAssetName, false},
		{ErrAssetRead, false},
	}
	for _, tt := range tests {
		if got := isNotFoundError(tt.err); got != tt.want {
			t.Errorf("isNotFoundError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestAssetResolver_ImplementsAssetLoader(t *testing.T) {
	t.Parallel()

	var _ AssetLoader = (*AssetResolver)(nil)
}
