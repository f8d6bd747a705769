// Package search holds the item projection embedded in the search page and
// the matching rule the page's script applies to it.
package search

import (
	"strings"

	"github.com/alnah/go-weeklysite/internal/content"
)

// Entry is the searchable projection of one item.
type Entry struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Tags     []string `json:"tags"`
	Score    string   `json:"score"`
	Evidence string   `json:"evidence"`
}

// Entries projects items, keeping their order. Tags are never nil so the
// page script can join them without a guard.
func Entries(items []content.Item) []Entry {
	out := make([]Entry, 0, len(items))
	for _, it := range items {
		tags := append([]string{}, it.Tags...)
		out = append(out, Entry{
			Slug:     it.Slug,
			Title:    it.Title,
			Tags:     tags,
			Score:    it.Score,
			Evidence: it.Evidence,
		})
	}
	return out
}

// Matches reports whether e matches query. query must already be trimmed
// and lowercased.
func (e Entry) Matches(query string) bool {
	return strings.Contains(strings.ToLower(e.Title), query) ||
		strings.Contains(strings.ToLower(strings.Join(e.Tags, " ")), query)
}

// Filter returns the entries whose title or space-joined tags contain
// query, case-insensitively. A blank query matches nothing.
func Filter(entries []Entry, query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []Entry
	for _, e := range entries {
		if e.Matches(q) {
			out = append(out, e)
		}
	}
	return out
}
