//go:build integration

package render

import (
	"context"
	"os/exec"
	"strings"
	"testing"
)

func requirePandoc(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath(DefaultPandocPath); err != nil {
		t.Skip("pandoc not installed")
	}
}

func TestPandocConverter_Integration(t *testing.T) {
	t.Parallel()
	requirePandoc(t)

	conv := NewPandocConverter("")
	got, err := conv.ToHTML(context.Background(), "# 本周 TL;DR\n\n行内公式 $x^2$\n")
	if err != nil {
		t.Fatalf("ToHTML() unexpected error: %v", err)
	}

	for _, want := range []string{"<h1", "本周 TL;DR", `class="math inline"`} {
		if !strings.Contains(got, want) {
			t.Errorf("ToHTML() = %q, missing %q", got, want)
		}
	}
	if strings.Contains(got, "<html") {
		t.Errorf("ToHTML() returned a standalone document: %q", got)
	}
}

func TestPandocConverter_IntegrationVersion(t *testing.T) {
	t.Parallel()
	requirePandoc(t)

	got, err := NewPandocConverter("").Version(context.Background())
	if err != nil {
		t.Fatalf("Version() unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "pandoc") {
		t.Errorf("Version() = %q, want pandoc prefix", got)
	}
}
