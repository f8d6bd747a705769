package assets

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTemplateSet creates {base}/templates/{name}/ with the given files,
// each defining a trivial template. Passing nil writes every required file.
func writeTemplateSet(t *testing.T, base, name string, files []string) string {
	t.Helper()

	if files == nil {
		files = RequiredTemplates
	}
	dir := filepath.Join(base, "templates", name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create template dir: %v", err)
	}
	for _, f := range files {
		body := `{{define "content"}}custom ` + f + `{{end}}`
		if err := os.WriteFile(filepath.Join(dir, f+".html"), []byte(body), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", f, err)
		}
	}
	return dir
}

func writeStyle(t *testing.T, base, name, css string) {
	t.Helper()

	dir := filepath.Join(base, "styles")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create styles dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".css"), []byte(css), 0o644); err != nil {
		t.Fatalf("failed to write CSS file: %v", err)
	}
}
