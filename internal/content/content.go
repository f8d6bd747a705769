// Package content turns parsed record files into typed items and weeks and
// provides the derived views the site is built from: score ordering, tag
// grouping, archive ordering and week section extraction. Every function
// except the loaders is pure and works without the filesystem.
package content

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alnah/go-weeklysite/internal/frontmatter"
)

// Sentinel errors for corpus loading.
var (
	ErrInvalidSlug   = errors.New("invalid slug")
	ErrDuplicateSlug = errors.New("duplicate slug")
	ErrMissingDir    = errors.New("content directory not found")
)

// Header keys recognized on records.
const (
	KeySlug      = "slug"
	KeyTitle     = "title"
	KeyTags      = "tags"
	KeyEvidence  = "evidence"
	KeyScore     = "score"
	KeyCreatedAt = "createdAt"
	KeyUpdatedAt = "updatedAt"
	KeyWeekStart = "weekStart"
	KeyWeekEnd   = "weekEnd"
)

// Item is one digest entry.
type Item struct {
	Slug      string
	Title     string
	Tags      []string
	Evidence  string
	Score     string
	CreatedAt string
	UpdatedAt string
	Body      string
	Source    string
}

// ScoreValue parses Score as a number. Missing or non-numeric scores are 0.
func (i Item) ScoreValue() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(i.Score), 64)
	if err != nil {
		return 0
	}
	return v
}

// Week is one periodic digest.
type Week struct {
	Slug      string
	Title     string
	WeekStart string
	WeekEnd   string
	Body      string
	Source    string
}

// HasPeriod reports whether either end of the week's period is set.
func (w Week) HasPeriod() bool {
	return w.WeekStart != "" || w.WeekEnd != ""
}

// ItemFromDocument builds an Item from a parsed record. source is the path
// of the record file; its base name without extension is the slug fallback.
func ItemFromDocument(doc frontmatter.Document, source string) Item {
	slug := slugFor(doc, source)
	return Item{
		Slug:      slug,
		Title:     titleFor(doc, slug),
		Tags:      cleanTags(doc.Strings(KeyTags)),
		Evidence:  doc.String(KeyEvidence),
		Score:     doc.String(KeyScore),
		CreatedAt: doc.String(KeyCreatedAt),
		UpdatedAt: doc.String(KeyUpdatedAt),
		Body:      doc.Body,
		Source:    source,
	}
}

// WeekFromDocument builds a Week from a parsed record.
func WeekFromDocument(doc frontmatter.Document, source string) Week {
	slug := slugFor(doc, source)
	return Week{
		Slug:      slug,
		Title:     titleFor(doc, slug),
		WeekStart: doc.String(KeyWeekStart),
		WeekEnd:   doc.String(KeyWeekEnd),
		Body:      doc.Body,
		Source:    source,
	}
}

// SlugFromFilename returns the base name of path without its extension.
func SlugFromFilename(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func slugFor(doc frontmatter.Document, source string) string {
	if s := doc.String(KeySlug); s != "" {
		return s
	}
	return SlugFromFilename(source)
}

func titleFor(doc frontmatter.Document, slug string) string {
	if t := doc.String(KeyTitle); t != "" {
		return t
	}
	return slug
}

// cleanTags trims every tag and drops empty ones. Duplicates are kept.
func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
