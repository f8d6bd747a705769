// Package pages renders the site's HTML pages from typed contexts through
// html/template, so every interpolated value is escaped by context. Only
// converter output (template.HTML) and the stylesheet (template.CSS) are
// inserted verbatim.
package pages

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"sort"

	"github.com/alnah/go-weeklysite/internal/assets"
	"github.com/alnah/go-weeklysite/internal/content"
	"github.com/alnah/go-weeklysite/internal/search"
)

// Sentinel errors for page rendering.
var (
	ErrTemplateParse  = errors.New("page template parsing failed")
	ErrTemplateRender = errors.New("page template rendering failed")
	ErrNilTemplateSet = errors.New("template set cannot be nil")
)

// Fixed page titles.
const (
	TitleHome    = "首页"
	TitleArchive = "周报归档"
	TitleTags    = "标签"
	TitleSearch  = "搜索"
	tagTitleFmt  = "标签：%s"
)

// DefaultSiteTitle is the navigation title when none is configured.
const DefaultSiteTitle = "AI 周报站点"

// Options configures a Builder.
type Options struct {
	SiteTitle  string
	BasePath   string
	Stylesheet string
	MathJax    bool
	FeedURL    string // site-absolute link to the feed, empty when none
	Templates  *assets.TemplateSet
}

// Builder renders pages with one parsed template per page kind.
type Builder struct {
	site  *Site
	pages map[string]*template.Template
}

// NewBuilder parses the template set. Each page template is parsed on its
// own clone of layout and partials, since every page defines "content".
func NewBuilder(opts Options) (*Builder, error) {
	if opts.Templates == nil {
		return nil, ErrNilTemplateSet
	}

	title := opts.SiteTitle
	if title == "" {
		title = DefaultSiteTitle
	}
	site := &Site{
		Title:      title,
		BasePath:   NormalizeBasePath(opts.BasePath),
		Stylesheet: template.CSS(sanitizeCSS(opts.Stylesheet)), // #nosec G203 -- operator stylesheet, </ escaped
		MathJax:    opts.MathJax,
		FeedURL:    opts.FeedURL,
	}

	base := template.New(assets.TemplateLayout)
	for _, name := range []string{assets.TemplateLayout, assets.TemplatePartials} {
		if err := parseInto(base, opts.Templates, name); err != nil {
			return nil, err
		}
	}

	pages := make(map[string]*template.Template, len(assets.PageTemplates))
	for _, name := range assets.PageTemplates {
		tmpl, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("%w: cloning layout: %v", ErrTemplateParse, err)
		}
		if err := parseInto(tmpl, opts.Templates, name); err != nil {
			return nil, err
		}
		pages[name] = tmpl
	}

	return &Builder{site: site, pages: pages}, nil
}

func parseInto(tmpl *template.Template, ts *assets.TemplateSet, name string) error {
	src, err := ts.Source(name)
	if err != nil {
		return err
	}
	if _, err := tmpl.Parse(src); err != nil {
		return fmt.Errorf("%w: %s.html: %v", ErrTemplateParse, name, err)
	}
	return nil
}

// Site returns the shared shell data.
func (b *Builder) Site() *Site {
	return b.site
}

func (b *Builder) shell(title string) Shell {
	return Shell{Site: b.site, Title: title}
}

func (b *Builder) execute(page string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := b.pages[page].ExecuteTemplate(&buf, assets.TemplateLayout, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateRender, page, err)
	}
	return buf.Bytes(), nil
}

// chips links each distinct tag to its page.
func (b *Builder) chips(tags []string, dirs map[string]string) []Link {
	unique := content.UniqueTags(tags)
	links := make([]Link, 0, len(unique))
	for _, tag := range unique {
		links = append(links, Link{Text: tag, URL: b.site.URL(TagPath(dirs[tag]))})
	}
	return links
}

func (b *Builder) card(item content.Item, dirs map[string]string) Card {
	return Card{
		Title:    item.Title,
		URL:      b.site.URL(ItemPath(item.Slug)),
		Evidence: item.Evidence,
		Score:    item.Score,
		Tags:     b.chips(item.Tags, dirs),
	}
}

func (b *Builder) cards(items []content.Item, dirs map[string]string) []Card {
	out := make([]Card, 0, len(items))
	for _, it := range items {
		out = append(out, b.card(it, dirs))
	}
	return out
}

// Item renders one item page.
func (b *Builder) Item(item content.Item, body template.HTML, dirs map[string]string) ([]byte, error) {
	return b.execute(assets.TemplateItem, ItemPage{
		Shell: b.shell(item.Title),
		Item:  item,
		Tags:  b.chips(item.Tags, dirs),
		Body:  body,
	})
}

// Week renders one week page.
func (b *Builder) Week(week content.Week, body template.HTML) ([]byte, error) {
	return b.execute(assets.TemplateWeek, WeekPage{
		Shell: b.shell(week.Title),
		Week:  week,
		Body:  body,
	})
}

// Archive renders the week archive in SortWeeks order.
func (b *Builder) Archive(weeks []content.Week) ([]byte, error) {
	sorted := content.SortWeeks(weeks)
	entries := make([]ArchiveEntry, 0, len(sorted))
	for _, w := range sorted {
		entries = append(entries, ArchiveEntry{
			Title:     w.Title,
			URL:       b.site.URL(WeekPath(w.Slug)),
			WeekStart: w.WeekStart,
			WeekEnd:   w.WeekEnd,
		})
	}
	return b.execute(assets.TemplateArchive, ArchivePage{Shell: b.shell(TitleArchive), Weeks: entries})
}

// Tags renders the tag index.
func (b *Builder) Tags(groups []content.TagGroup) ([]byte, error) {
	entries := make([]TagEntry, 0, len(groups))
	for _, g := range groups {
		entries = append(entries, TagEntry{
			Name:  g.Tag,
			URL:   b.site.URL(TagPath(g.Dir)),
			Count: len(g.Items),
		})
	}
	return b.execute(assets.TemplateTags, TagsPage{Shell: b.shell(TitleTags), Tags: entries})
}

// Tag renders one tag page.
func (b *Builder) Tag(group content.TagGroup, dirs map[string]string) ([]byte, error) {
	return b.execute(assets.TemplateTag, TagPage{
		Shell: b.shell(fmt.Sprintf(tagTitleFmt, group.Tag)),
		Tag:   group.Tag,
		Cards: b.cards(group.Items, dirs),
	})
}

// Search renders the search page with the items' search entries.
func (b *Builder) Search(items []content.Item, dirs map[string]string) ([]byte, error) {
	tagURLs := make(map[string]string, len(dirs))
	for tag, dir := range dirs {
		tagURLs[tag] = b.site.URL(TagPath(dir))
	}
	return b.execute(assets.TemplateSearch, SearchPage{
		Shell:    b.shell(TitleSearch),
		Entries:  search.Entries(items),
		ItemBase: b.site.URL("items/"),
		TagURLs:  tagURLs,
	})
}

// HomeInput is the latest week and its rendered home sections.
type HomeInput struct {
	Week    content.Week
	TLDR    template.HTML
	Actions template.HTML
}

// Home renders the home page.
func (b *Builder) Home(home HomeInput, items []content.Item, dirs map[string]string) ([]byte, error) {
	return b.execute(assets.TemplateHome, HomePage{
		Shell:   b.shell(TitleHome),
		Week:    home.Week,
		WeekURL: b.site.URL(WeekPath(home.Week.Slug)),
		TLDR:    home.TLDR,
		Actions: home.Actions,
		Cards:   b.cards(items, dirs),
	})
}

// Corpus is everything the pages are built from. Items are in display
// order; bodies are rendered HTML keyed by slug.
type Corpus struct {
	Items      []content.Item
	Weeks      []content.Week
	ItemBodies map[string]template.HTML
	WeekBodies map[string]template.HTML
	Home       *HomeInput // nil when there are no weeks
}

// Files maps output paths to page bytes.
type Files map[string][]byte

// Paths returns the output paths in sorted order.
func (f Files) Paths() []string {
	paths := make([]string, 0, len(f))
	for p := range f {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// BuildAll renders every page of c.
func (b *Builder) BuildAll(c Corpus) (Files, error) {
	files := Files{}
	groups := content.GroupByTag(c.Items)
	dirs := content.TagDirs(groups)

	for _, item := range c.Items {
		page, err := b.Item(item, c.ItemBodies[item.Slug], dirs)
		if err != nil {
			return nil, err
		}
		files[ItemPath(item.Slug)] = page
	}

	for _, week := range c.Weeks {
		page, err := b.Week(week, c.WeekBodies[week.Slug])
		if err != nil {
			return nil, err
		}
		files[WeekPath(week.Slug)] = page
	}

	archive, err := b.Archive(c.Weeks)
	if err != nil {
		return nil, err
	}
	files[ArchivePath] = archive

	tags, err := b.Tags(groups)
	if err != nil {
		return nil, err
	}
	files[TagsPath] = tags

	for _, g := range groups {
		page, err := b.Tag(g, dirs)
		if err != nil {
			return nil, err
		}
		files[TagPath(g.Dir)] = page
	}

	searchPage, err := b.Search(c.Items, dirs)
	if err != nil {
		return nil, err
	}
	files[SearchPath] = searchPage

	if c.Home != nil {
		home, err := b.Home(*c.Home, c.Items, dirs)
		if err != nil {
			return nil, err
		}
		files[HomePath] = home
	}

	return files, nil
}
