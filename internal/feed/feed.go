// Package feed writes the RSS feed of weekly digests.
package feed

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/feeds"

	"github.com/alnah/go-weeklysite/internal/content"
	"github.com/alnah/go-weeklysite/internal/dateutil"
)

// Path is the feed location relative to the output root.
const Path = "feed.xml"

// ErrNoSiteURL indicates a feed was requested without an absolute site URL.
var ErrNoSiteURL = errors.New("feed requires site url")

// Options describes the channel.
type Options struct {
	Title       string
	Description string
	SiteURL     string // absolute, e.g. https://example.github.io
	BasePath    string // prefix of every page path, e.g. /ai-weekly
}

// Link returns the absolute URL of path under the site. Each path segment is
// percent-encoded.
func (o Options) Link(path string) string {
	segments := strings.Split(strings.TrimLeft(path, "/"), "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.TrimRight(o.SiteURL, "/") + o.BasePath + "/" + strings.Join(segments, "/")
}

// Build returns the RSS document for weeks in archive order. The channel
// date is the newest parseable week end, so unchanged input yields
// identical output.
func Build(opts Options, weeks []content.Week) (string, error) {
	if strings.TrimSpace(opts.SiteURL) == "" {
		return "", ErrNoSiteURL
	}

	f := &feeds.Feed{
		Title:       opts.Title,
		Link:        &feeds.Link{Href: opts.Link("index.html")},
		Description: opts.Description,
	}

	for _, w := range content.SortWeeks(weeks) {
		link := opts.Link("weeks/" + w.Slug + "/index.html")
		item := &feeds.Item{
			Title:       w.Title,
			Link:        &feeds.Link{Href: link},
			Id:          link,
			Description: period(w),
		}
		if t, err := dateutil.Parse(w.WeekEnd); err == nil {
			item.Created = t
			if t.After(f.Created) {
				f.Created = t
			}
		}
		f.Items = append(f.Items, item)
	}

	out, err := f.ToRss()
	if err != nil {
		return "", fmt.Errorf("encoding feed: %w", err)
	}
	return out, nil
}

func period(w content.Week) string {
	if !w.HasPeriod() {
		return ""
	}
	return w.WeekStart + " – " + w.WeekEnd
}
