package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alnah/go-weeklysite/internal/fileutil"
	"github.com/alnah/go-weeklysite/internal/frontmatter"
)

// DefaultExtensions are the record file extensions read when none are given.
var DefaultExtensions = []string{".mdx", ".md"}

// LoadItems reads every record file in dir, in filename order.
func LoadItems(dir string, exts []string) ([]Item, error) {
	var items []Item
	seen := map[string]string{}
	err := walkRecords(dir, exts, func(path string, doc frontmatter.Document) error {
		item := ItemFromDocument(doc, path)
		if err := checkSlug(item.Slug, path, seen); err != nil {
			return err
		}
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// LoadWeeks reads every week record file in dir, in filename order.
func LoadWeeks(dir string, exts []string) ([]Week, error) {
	var weeks []Week
	seen := map[string]string{}
	err := walkRecords(dir, exts, func(path string, doc frontmatter.Document) error {
		week := WeekFromDocument(doc, path)
		if err := checkSlug(week.Slug, path, seen); err != nil {
			return err
		}
		weeks = append(weeks, week)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return weeks, nil
}

// ListRecordFiles returns the paths of record files directly inside dir,
// sorted by name. Subdirectories are not descended into.
func ListRecordFiles(dir string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingDir, dir)
		}
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !hasExtension(e.Name(), exts) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

func walkRecords(dir string, exts []string, fn func(path string, doc frontmatter.Document) error) error {
	paths, err := ListRecordFiles(dir, exts)
	if err != nil {
		return err
	}
	for _, path := range paths {
		data, err := os.ReadFile(path) // #nosec G304 -- path comes from listing the configured content dir
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if err := fn(path, frontmatter.Parse(string(data))); err != nil {
			return err
		}
	}
	return nil
}

func checkSlug(slug, path string, seen map[string]string) error {
	if err := fileutil.ValidateSegment(slug); err != nil {
		return fmt.Errorf("%w: %q in %s", ErrInvalidSlug, slug, path)
	}
	if prev, ok := seen[slug]; ok {
		return fmt.Errorf("%w: %q in %s and %s", ErrDuplicateSlug, slug, prev, path)
	}
	seen[slug] = path
	return nil
}

func hasExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}
