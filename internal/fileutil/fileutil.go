// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrSegmentEmpty     = errors.New("path segment cannot be empty")
	ErrSegmentTraversal = errors.New("path segment contains separator, null byte, or dot traversal")
	ErrUnsafeDir        = errors.New("refusing to reset unsafe directory")
	ErrPathEscapes      = errors.New("path escapes root directory")
)

// File permission constants.
const (
	DirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	FilePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// ValidateSegment checks that name can be used as a single directory name
// inside an output tree.
func ValidateSegment(name string) error {
	if name == "" {
		return ErrSegmentEmpty
	}
	if strings.ContainsAny(name, "/\\\x00") || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrSegmentTraversal, name)
	}
	return nil
}

// CheckResettable reports whether ResetDir would accept dir. The
// filesystem root, the working directory, and any directory that contains
// one of the protected paths are refused with ErrUnsafeDir.
func CheckResettable(dir string, protected ...string) error {
	_, err := resettable(dir, protected)
	return err
}

// ResetDir removes dir and everything below it, then recreates it empty.
// It refuses the same directories as CheckResettable.
func ResetDir(dir string, protected ...string) error {
	abs, err := resettable(dir, protected)
	if err != nil {
		return err
	}

	if err := os.RemoveAll(abs); err != nil {
		return fmt.Errorf("removing %s: %w", abs, err)
	}
	if err := os.MkdirAll(abs, DirPermissions); err != nil {
		return fmt.Errorf("creating %s: %w", abs, err)
	}
	return nil
}

func resettable(dir string, protected []string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", fmt.Errorf("%w: empty path", ErrUnsafeDir)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	if abs == filepath.Dir(abs) {
		return "", fmt.Errorf("%w: %s is a filesystem root", ErrUnsafeDir, abs)
	}
	if wd, err := os.Getwd(); err == nil && IsWithin(abs, wd) {
		return "", fmt.Errorf("%w: %s contains the working directory", ErrUnsafeDir, abs)
	}
	for _, p := range protected {
		if p == "" {
			continue
		}
		pAbs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		if IsWithin(abs, pAbs) {
			return "", fmt.Errorf("%w: %s contains %s", ErrUnsafeDir, abs, pAbs)
		}
	}
	return abs, nil
}

// WriteFile writes data to root/rel, creating parent directories as needed.
// rel must use forward slashes and must stay inside root.
func WriteFile(root, rel string, data []byte) error {
	target := filepath.Join(root, filepath.FromSlash(rel))
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", root, err)
	}
	targetAbs, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", target, err)
	}
	if !IsWithin(rootAbs, targetAbs) || targetAbs == rootAbs {
		return fmt.Errorf("%w: %s", ErrPathEscapes, rel)
	}

	if err := os.MkdirAll(filepath.Dir(targetAbs), DirPermissions); err != nil {
		return fmt.Errorf("creating directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(targetAbs, data, FilePermissions); err != nil { // #nosec G306 -- site output is public
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	return nil
}

// IsWithin reports whether child is parent itself or lies below it.
// Both paths must be absolute and clean.
func IsWithin(parent, child string) bool {
	if parent == child {
		return true
	}
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "default" -> false (name)
//   - "./site.css" -> true (relative path)
//   - "website/styles/globals.css" -> true (contains separator)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
