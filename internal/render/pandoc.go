package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/alnah/go-weeklysite/internal/process"
)

// DefaultPandocPath is the pandoc binary looked up on PATH.
const DefaultPandocPath = "pandoc"

// pandocArgs reads markdown on stdin and writes an HTML fragment with
// MathJax-ready math spans on stdout.
var pandocArgs = []string{"--from", "markdown", "--to", "html", "--mathjax"}

// waitDelay bounds how long Wait blocks on pipes after the process is killed.
const waitDelay = 2 * time.Second

// CommandRunner abstracts command execution to enable testing without real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, stdin string, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec. The command runs in its
// own process group, which is killed when ctx is cancelled.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, stdin string, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- converter path comes from operator config
	process.SetProcessGroup(cmd)
	cmd.Cancel = func() error {
		if cmd.Process != nil {
			process.KillProcessGroup(cmd.Process.Pid)
			return cmd.Process.Kill()
		}
		return nil
	}
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil && err != nil {
		return stdout.String(), stderr.String(), ctxErr
	}
	return stdout.String(), stderr.String(), err
}

// PandocConverter converts markdown by piping it through the pandoc CLI.
type PandocConverter struct {
	Path   string
	Runner CommandRunner
}

// NewPandocConverter creates a PandocConverter with a real command runner.
// An empty path selects DefaultPandocPath.
func NewPandocConverter(path string) *PandocConverter {
	if strings.TrimSpace(path) == "" {
		path = DefaultPandocPath
	}
	return &PandocConverter{Path: path, Runner: &ExecRunner{}}
}

// Args returns the arguments passed to pandoc.
func (c *PandocConverter) Args() []string {
	return append([]string(nil), pandocArgs...)
}

// ToHTML converts markdown to an HTML fragment. A blank body converts to ""
// without starting pandoc.
func (c *PandocConverter) ToHTML(ctx context.Context, markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}

	stdout, stderr, err := c.Runner.Run(ctx, markdown, c.Path, pandocArgs...)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return "", err
		case errors.Is(err, exec.ErrNotFound):
			return "", fmt.Errorf("%w: %s: %v", ErrConverterNotFound, c.Path, err)
		}
		return "", fmt.Errorf("%w: %s: %s: %v", ErrConversion, c.Path, strings.TrimSpace(stderr), err)
	}
	return stdout, nil
}

// Version runs "pandoc --version" and returns its first line.
func (c *PandocConverter) Version(ctx context.Context) (string, error) {
	stdout, _, err := c.Runner.Run(ctx, "", c.Path, "--version")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %s: %v", ErrConverterNotFound, c.Path, err)
		}
		return "", fmt.Errorf("running %s --version: %w", c.Path, err)
	}
	first, _, _ := strings.Cut(stdout, "\n")
	return strings.TrimSpace(first), nil
}
