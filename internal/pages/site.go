package pages

import (
	"html/template"
	"net/url"
	"strings"
)

// Site is the data shared by every page shell.
type Site struct {
	Title      string
	BasePath   string
	Stylesheet template.CSS
	MathJax    bool
	FeedURL    string
}

// URL returns the site-absolute URL of an output path. Each path segment is
// percent-encoded, so a tag or slug holding "#" or "?" still resolves to
// the file written under its raw name.
func (s *Site) URL(path string) string {
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return s.BasePath + "/" + strings.Join(segments, "/")
}

// HomeURL links the home page.
func (s *Site) HomeURL() string { return s.URL(HomePath) }

// ArchiveURL links the week archive.
func (s *Site) ArchiveURL() string { return s.URL(ArchivePath) }

// TagsURL links the tag index.
func (s *Site) TagsURL() string { return s.URL(TagsPath) }

// SearchURL links the search page.
func (s *Site) SearchURL() string { return s.URL(SearchPath) }

// sanitizeCSS escapes "</" so the stylesheet cannot close the <style> block
// early. It is the only change made to the inlined stylesheet.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
