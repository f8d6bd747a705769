package feed

import (
	"errors"
	"strings"
	"testing"

	"github.com/mmcdole/gofeed"

	"github.com/alnah/go-weeklysite/internal/content"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	opts := Options{
		Title:       "AI 周报站点",
		Description: "每周 AI 动态",
		SiteURL:     "https://example.github.io/",
		BasePath:    "/ai-weekly",
	}
	weeks := []content.Week{
		{Slug: "w1", Title: "第一周", WeekStart: "2024-01-01", WeekEnd: "2024-01-07"},
		{Slug: "w3", Title: "第三周 <R&D>", WeekStart: "2024-01-15", WeekEnd: "2024-01-21"},
		{Slug: "w2", Title: "第二周", WeekEnd: "not a date"},
	}

	out, err := Build(opts, weeks)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	parsed, err := gofeed.NewParser().ParseString(out)
	if err != nil {
		t.Fatalf("gofeed could not parse output: %v\n%s", err, out)
	}

	if parsed.FeedType != "rss" {
		t.Errorf("FeedType = %q, want rss", parsed.FeedType)
	}
	if parsed.Title != opts.Title {
		t.Errorf("Title = %q, want %q", parsed.Title, opts.Title)
	}
	if len(parsed.Items) != 3 {
		t.Fatalf("got %d items, want 3", len(parsed.Items))
	}

	first := parsed.Items[0]
	if first.Title != "第三周 <R&D>" {
		t.Errorf("first item title = %q", first.Title)
	}
	if want := "https://example.github.io/ai-weekly/weeks/w3/index.html"; first.Link != want {
		t.Errorf("first item link = %q, want %q", first.Link, want)
	}
	if first.PublishedParsed == nil || first.PublishedParsed.Format("2006-01-02") != "2024-01-21" {
		t.Errorf("first item date = %v, want 2024-01-21", first.PublishedParsed)
	}
	if parsed.Items[2].PublishedParsed != nil {
		t.Errorf("unparseable weekEnd produced date %v", parsed.Items[2].PublishedParsed)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	t.Parallel()

	opts := Options{Title: "t", SiteURL: "https://example.com"}
	weeks := []content.Week{{Slug: "w", WeekEnd: "2024-01-07"}}

	a, err := Build(opts, weeks)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Build(opts, weeks)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("Build() output differs between runs")
	}
	if strings.Contains(a, "lastBuildDate") {
		t.Error("feed carries a wall-clock build date")
	}
}

func TestBuild_NoSiteURL(t *testing.T) {
	t.Parallel()

	if _, err := Build(Options{}, nil); !errors.Is(err, ErrNoSiteURL) {
		t.Errorf("Build() error = %v, want ErrNoSiteURL", err)
	}
}

func TestOptions_Link(t *testing.T) {
	t.Parallel()

	tests := []struct {
		opts Options
		path string
		want string
	}{
		{Options{SiteURL: "https://x.io"}, "index.html", "https://x.io/index.html"},
		{Options{SiteURL: "https://x.io/", BasePath: "/site"}, "/weeks/a/index.html", "https://x.io/site/weeks/a/index.html"},
		{Options{SiteURL: "https://x.io"}, "weeks/2024 #3?/index.html", "https://x.io/weeks/2024%20%233%3F/index.html"},
	}
	for _, tt := range tests {
		if got := tt.opts.Link(tt.path); got != tt.want {
			t.Errorf("Link(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
