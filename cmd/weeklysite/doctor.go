package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/alnah/go-weeklysite/internal/config"
	"github.com/alnah/go-weeklysite/internal/content"
	"github.com/alnah/go-weeklysite/internal/fileutil"
	"github.com/alnah/go-weeklysite/internal/render"
)

// Doctor statuses.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status    string        `json:"status"` // "ready", "warnings", "errors"
	Converter converterInfo `json:"converter"`
	Content   contentInfo   `json:"content"`
	Output    outputInfo    `json:"output"`
	Env       envInfo       `json:"environment"`
	Warnings  []string      `json:"warnings,omitempty"`
	Errors    []string      `json:"errors,omitempty"`
}

// converterInfo holds markdown converter detection results.
type converterInfo struct {
	Engine  string `json:"engine"`
	Pandoc  string `json:"pandoc_path"`
	Found   bool   `json:"found"`
	Version string `json:"version,omitempty"`
}

// contentInfo holds corpus directory checks.
type contentInfo struct {
	ItemsDir string `json:"items_dir"`
	WeeksDir string `json:"weeks_dir"`
	Items    int    `json:"items"`
	Weeks    int    `json:"weeks"`
}

// outputInfo holds output directory checks.
type outputInfo struct {
	Dir      string `json:"dir"`
	Safe     bool   `json:"safe"`
	Writable bool   `json:"writable"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(ctx context.Context, args []string, env *Environment) int {
	flags, err := parseDoctorFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, errHelpRequested) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitUsage
	}

	cfg, err := resolveConfig(flags.common.config, configOverrides{
		content: flags.site.content,
		output:  flags.output,
	}, env)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}

	result := runDoctor(ctx, cfg, env)

	if flags.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(ctx context.Context, cfg *config.Config, env *Environment) *doctorResult {
	result := &doctorResult{
		Status: statusReady,
		Env: envInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
		},
	}

	checkConverter(ctx, result, cfg, env)
	checkContent(result, cfg)
	checkOutput(result, cfg)
	checkEnvironment(result, env)

	if len(result.Errors) > 0 {
		result.Status = statusErrors
	} else if len(result.Warnings) > 0 {
		result.Status = statusWarnings
	}

	return result
}

// checkConverter looks for pandoc. A missing pandoc is an error only when
// it is the configured engine.
func checkConverter(ctx context.Context, result *doctorResult, cfg *config.Config, env *Environment) {
	engine := strings.ToLower(cfg.Render.Engine)
	if engine == "" {
		engine = render.EnginePandoc
	}
	result.Converter.Engine = engine
	result.Converter.Pandoc = cfg.Render.PandocPath

	version, err := env.PandocVersion(ctx, cfg.Render.PandocPath)
	if err != nil {
		msg := fmt.Sprintf("pandoc not usable at %q: %v", cfg.Render.PandocPath, err)
		if engine == render.EnginePandoc {
			result.Errors = append(result.Errors, msg+". Install pandoc or use --engine goldmark")
		} else {
			result.Warnings = append(result.Warnings, msg)
		}
		return
	}
	result.Converter.Found = true
	result.Converter.Version = version
}

// checkContent verifies both record directories exist and counts records.
func checkContent(result *doctorResult, cfg *config.Config) {
	result.Content.ItemsDir = cfg.ItemsPath()
	result.Content.WeeksDir = cfg.WeeksPath()

	if files, err := content.ListRecordFiles(result.Content.ItemsDir, cfg.Content.Extensions); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("items directory: %v", err))
	} else {
		result.Content.Items = len(files)
		if len(files) == 0 {
			result.Warnings = append(result.Warnings, "no item records found")
		}
	}

	if files, err := content.ListRecordFiles(result.Content.WeeksDir, cfg.Content.Extensions); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("weeks directory: %v", err))
	} else {
		result.Content.Weeks = len(files)
		if len(files) == 0 {
			result.Warnings = append(result.Warnings, "no week records found; the home page will be skipped")
		}
	}
}

// checkOutput verifies the output directory may be reset and that its
// nearest existing ancestor is writable.
func checkOutput(result *doctorResult, cfg *config.Config) {
	dir := cfg.Output.Dir
	result.Output.Dir = dir

	if err := fileutil.CheckResettable(dir, cfg.ItemsPath(), cfg.WeeksPath()); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("output directory: %v", err))
	} else {
		result.Output.Safe = true
	}

	parent := nearestExistingDir(dir)
	f, err := os.CreateTemp(parent, ".weeklysite-doctor-*")
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("output parent not writable: %s", parent))
		return
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	result.Output.Writable = true
}

// nearestExistingDir walks up from dir to the first directory that exists.
func nearestExistingDir(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "."
	}
	for !fileutil.DirExists(abs) {
		parent := filepath.Dir(abs)
		if parent == abs {
			break
		}
		abs = parent
	}
	return abs
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(result *doctorResult, env *Environment) {
	result.Env.Container, result.Env.ContainerHint = isContainer(env.Getenv)

	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}
	for _, v := range ciVars {
		if env.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint indicates which signal was detected.
func isContainer(getenv func(string) string) (bool, string) {
	if getenv("WEEKLYSITE_CONTAINER") == "1" {
		return true, "WEEKLYSITE_CONTAINER=1"
	}
	if fileutil.FileExists("/.dockerenv") {
		return true, "/.dockerenv"
	}
	if v := getenv("container"); v != "" {
		return true, "container=" + v
	}
	if getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	s := newStyles(w)
	ok := s.Success.Render("[OK]")
	bad := s.Error.Render("[ERROR]")

	fmt.Fprintln(w, "weeklysite doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Converter")
	fmt.Fprintf(w, "  %s Engine: %s\n", ok, r.Converter.Engine)
	if r.Converter.Found {
		fmt.Fprintf(w, "  %s pandoc: %s\n", ok, r.Converter.Version)
	} else {
		fmt.Fprintf(w, "  %s pandoc: not found at %s\n", s.Warn.Render("[--]"), r.Converter.Pandoc)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Content")
	fmt.Fprintf(w, "  %s Items: %s (%d records)\n", ok, r.Content.ItemsDir, r.Content.Items)
	fmt.Fprintf(w, "  %s Weeks: %s (%d records)\n", ok, r.Content.WeeksDir, r.Content.Weeks)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Output")
	if r.Output.Safe && r.Output.Writable {
		fmt.Fprintf(w, "  %s %s\n", ok, r.Output.Dir)
	} else {
		fmt.Fprintf(w, "  %s %s\n", bad, r.Output.Dir)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  %s Platform: %s/%s\n", ok, r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  %s Container: detected (%s)\n", ok, r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintf(w, "  %s CI: detected\n", ok)
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  %s %s\n", s.Warn.Render("[WARN]"), warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  %s %s\n", bad, err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready to build")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
