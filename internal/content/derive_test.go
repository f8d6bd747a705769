package content

import (
	"reflect"
	"testing"
)

// ---------------------------------------------------------------------------
// TestSortItems - Score ordering
// ---------------------------------------------------------------------------

func TestSortItems(t *testing.T) {
	t.Parallel()

	items := []Item{
		{Slug: "c", Score: "7"},
		{Slug: "a", Score: "9"},
		{Slug: "b", Score: "9"},
		{Slug: "d"},
		{Slug: "e", Score: "8.5"},
	}

	got := slugsOf(SortItems(items))
	want := []string{"a", "b", "e", "c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortItems() = %v, want %v", got, want)
	}
	if items[0].Slug != "c" {
		t.Error("SortItems() modified its input")
	}
}

// ---------------------------------------------------------------------------
// TestGroupByTag - Membership, order and directory names
// ---------------------------------------------------------------------------

func TestGroupByTag(t *testing.T) {
	t.Parallel()

	items := []Item{
		{Slug: "llm-safety", Tags: []string{"safety", "llm", "safety"}},
		{Slug: "robotics", Tags: []string{"robotics"}},
		{Slug: "agents", Tags: []string{"llm", "agents"}},
		{Slug: "untagged"},
	}

	groups := GroupByTag(items)

	var tags []string
	members := map[string][]string{}
	for _, g := range groups {
		tags = append(tags, g.Tag)
		members[g.Tag] = slugsOf(g.Items)
	}

	if want := []string{"agents", "llm", "robotics", "safety"}; !reflect.DeepEqual(tags, want) {
		t.Errorf("tags = %v, want %v", tags, want)
	}
	wantMembers := map[string][]string{
		"agents":   {"agents"},
		"llm":      {"llm-safety", "agents"},
		"robotics": {"robotics"},
		"safety":   {"llm-safety"},
	}
	if !reflect.DeepEqual(members, wantMembers) {
		t.Errorf("members = %v, want %v", members, wantMembers)
	}
}

func TestGroupByTagMembership(t *testing.T) {
	t.Parallel()

	items := []Item{
		{Slug: "a", Tags: []string{"x", "y"}},
		{Slug: "b", Tags: []string{"y", "z"}},
		{Slug: "c", Tags: []string{"z"}},
	}

	groups := GroupByTag(items)
	for _, item := range items {
		listed := map[string]bool{}
		for _, tag := range item.Tags {
			listed[tag] = true
		}
		for _, g := range groups {
			found := false
			for _, member := range g.Items {
				if member.Slug == item.Slug {
					found = true
				}
			}
			if found != listed[g.Tag] {
				t.Errorf("item %q in group %q = %v, want %v", item.Slug, g.Tag, found, listed[g.Tag])
			}
		}
	}
}

func TestGroupByTagDirs(t *testing.T) {
	t.Parallel()

	items := []Item{{Slug: "a", Tags: []string{"ci/cd", "ci-cd", "..", "安全"}}}

	dirs := TagDirs(GroupByTag(items))
	want := map[string]string{
		"..":    "--",
		"ci-cd": "ci-cd",
		"ci/cd": "ci-cd-2",
		"安全":    "安全",
	}
	if !reflect.DeepEqual(dirs, want) {
		t.Errorf("TagDirs() = %v, want %v", dirs, want)
	}
}

func TestTagDir(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"llm":   "llm",
		"ci/cd": "ci-cd",
		`a\b`:   "a-b",
		".":     "-",
		"..":    "--",
		"v1.0":  "v1.0",
		"机器 学习": "机器 学习",
	}
	for tag, want := range tests {
		if got := TagDir(tag); got != want {
			t.Errorf("TagDir(%q) = %q, want %q", tag, got, want)
		}
	}
}

func TestUniqueTags(t *testing.T) {
	t.Parallel()

	got := UniqueTags([]string{"b", "a", "b", "c", "a"})
	if want := []string{"b", "a", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("UniqueTags() = %v, want %v", got, want)
	}
	if got := UniqueTags(nil); len(got) != 0 {
		t.Errorf("UniqueTags(nil) = %v, want empty", got)
	}
}

// ---------------------------------------------------------------------------
// TestSortWeeks - Archive ordering
// ---------------------------------------------------------------------------

func TestSortWeeks(t *testing.T) {
	t.Parallel()

	t.Run("descending by weekEnd", func(t *testing.T) {
		t.Parallel()

		weeks := []Week{
			{Slug: "w1", WeekEnd: "2024-01-07"},
			{Slug: "w3", WeekEnd: "2024-01-21"},
			{Slug: "w2", WeekEnd: "2024-01-14"},
		}
		got := weekEnds(SortWeeks(weeks))
		if want := []string{"2024-01-21", "2024-01-14", "2024-01-07"}; !reflect.DeepEqual(got, want) {
			t.Errorf("SortWeeks() = %v, want %v", got, want)
		}
	})

	t.Run("ties keep input order", func(t *testing.T) {
		t.Parallel()

		weeks := []Week{
			{Slug: "x", WeekEnd: "2024-01-07"},
			{Slug: "y", WeekEnd: "2024-01-07"},
			{Slug: "z"},
		}
		got := SortWeeks(weeks)
		var slugs []string
		for _, w := range got {
			slugs = append(slugs, w.Slug)
		}
		if want := []string{"x", "y", "z"}; !reflect.DeepEqual(slugs, want) {
			t.Errorf("SortWeeks() = %v, want %v", slugs, want)
		}
	})
}

func TestLatestWeek(t *testing.T) {
	t.Parallel()

	if _, ok := LatestWeek(nil); ok {
		t.Error("LatestWeek(nil) ok = true, want false")
	}

	weeks := []Week{
		{Slug: "w1", WeekEnd: "2024-01-07"},
		{Slug: "w3", WeekEnd: "2024-01-21"},
		{Slug: "w2", WeekEnd: "2024-01-14"},
	}
	got, ok := LatestWeek(weeks)
	if !ok || got.Slug != "w3" {
		t.Errorf("LatestWeek() = %q, %v; want w3, true", got.Slug, ok)
	}
}
