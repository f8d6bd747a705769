package pages

import (
	"html/template"

	"github.com/alnah/go-weeklysite/internal/content"
	"github.com/alnah/go-weeklysite/internal/search"
)

// Shell carries what the layout template reads.
type Shell struct {
	Site  *Site
	Title string
}

// Link is a labelled URL, used for tag chips.
type Link struct {
	Text string
	URL  string
}

// Card is the summary of one item on tag pages and the home page.
type Card struct {
	Title    string
	URL      string
	Evidence string
	Score    string
	Tags     []Link
}

// ArchiveEntry is one line of the week archive.
type ArchiveEntry struct {
	Title     string
	URL       string
	WeekStart string
	WeekEnd   string
}

// TagEntry is one line of the tag index.
type TagEntry struct {
	Name  string
	URL   string
	Count int
}

// ItemPage is the context of an item page.
type ItemPage struct {
	Shell
	Item content.Item
	Tags []Link
	Body template.HTML
}

// WeekPage is the context of a week page.
type WeekPage struct {
	Shell
	Week content.Week
	Body template.HTML
}

// ArchivePage is the context of the week archive.
type ArchivePage struct {
	Shell
	Weeks []ArchiveEntry
}

// TagsPage is the context of the tag index.
type TagsPage struct {
	Shell
	Tags []TagEntry
}

// TagPage is the context of one tag's page.
type TagPage struct {
	Shell
	Tag   string
	Cards []Card
}

// SearchPage is the context of the search page. Entries, ItemBase and
// TagURLs are emitted as script literals.
type SearchPage struct {
	Shell
	Entries  []search.Entry
	ItemBase string
	TagURLs  map[string]string
}

// HomePage is the context of the home page.
type HomePage struct {
	Shell
	Week    content.Week
	WeekURL string
	TLDR    template.HTML
	Actions template.HTML
	Cards   []Card
}
