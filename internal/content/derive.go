package content

import (
	"sort"
	"strconv"
	"strings"
)

// TagGroup is one tag with the items that list it.
type TagGroup struct {
	Tag   string
	Dir   string
	Items []Item
}

// SortItems returns a copy of items ordered by score descending, ties broken
// by slug ascending.
func SortItems(items []Item) []Item {
	out := append([]Item(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := out[i].ScoreValue(), out[j].ScoreValue()
		if si != sj {
			return si > sj
		}
		return out[i].Slug < out[j].Slug
	})
	return out
}

// GroupByTag maps every tag to the items listing it. Groups are sorted by tag;
// items inside a group keep their input order and appear once per group even
// when an item lists the same tag twice. Each group gets a distinct output
// directory name derived with TagDir.
func GroupByTag(items []Item) []TagGroup {
	index := map[string]int{}
	var groups []TagGroup
	for _, item := range items {
		for _, tag := range UniqueTags(item.Tags) {
			i, ok := index[tag]
			if !ok {
				i = len(groups)
				index[tag] = i
				groups = append(groups, TagGroup{Tag: tag})
			}
			groups[i].Items = append(groups[i].Items, item)
		}
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].Tag < groups[j].Tag })

	used := map[string]bool{}
	for i := range groups {
		dir := TagDir(groups[i].Tag)
		for n := 2; used[dir]; n++ {
			dir = TagDir(groups[i].Tag) + "-" + strconv.Itoa(n)
		}
		used[dir] = true
		groups[i].Dir = dir
	}
	return groups
}

// TagDirs returns the tag-to-directory mapping of groups.
func TagDirs(groups []TagGroup) map[string]string {
	dirs := make(map[string]string, len(groups))
	for _, g := range groups {
		dirs[g.Tag] = g.Dir
	}
	return dirs
}

// TagDir turns a tag into a single path segment. Separators and NUL become
// "-", and the dot names are spelled with dashes.
func TagDir(tag string) string {
	dir := strings.NewReplacer("/", "-", "\\", "-", "\x00", "-").Replace(tag)
	switch dir {
	case ".":
		return "-"
	case "..":
		return "--"
	}
	return dir
}

// UniqueTags drops repeated tags, keeping first occurrences in order.
func UniqueTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// SortWeeks returns a copy of weeks ordered by WeekEnd descending, compared
// as text. Equal WeekEnd values keep their input order.
func SortWeeks(weeks []Week) []Week {
	out := append([]Week(nil), weeks...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].WeekEnd > out[j].WeekEnd })
	return out
}

// LatestWeek returns the first week in SortWeeks order.
func LatestWeek(weeks []Week) (Week, bool) {
	if len(weeks) == 0 {
		return Week{}, false
	}
	return SortWeeks(weeks)[0], true
}
