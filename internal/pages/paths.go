package pages

import "strings"

// Output paths relative to the output root.
const (
	HomePath    = "index.html"
	SearchPath  = "search.html"
	ArchivePath = "weeks/index.html"
	TagsPath    = "tags/index.html"
)

const pageFile = "/index.html"

// ItemPath returns the output path of an item page.
func ItemPath(slug string) string { return "items/" + slug + pageFile }

// WeekPath returns the output path of a week page.
func WeekPath(slug string) string { return "weeks/" + slug + pageFile }

// TagPath returns the output path of a tag page for the tag directory dir.
func TagPath(dir string) string { return "tags/" + dir + pageFile }

// NormalizeBasePath returns p with one leading slash and no trailing slash.
// An empty or "/" base path normalizes to "".
func NormalizeBasePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}
