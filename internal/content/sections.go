package content

import "strings"

// Section headings recognized in week bodies.
const (
	headingTLDR    = "## tl;dr"
	headingList    = "## 本周入选条目"
	headingActions = "## 对我最关键的"
	headingPrefix  = "## "
)

// Sections holds the markdown of the named parts of a week body, without
// their headings. Missing sections are empty.
type Sections struct {
	TLDR    string
	List    string
	Actions string
}

// ExtractSections splits a week body into its TL;DR, selected-items and
// actions sections. A section runs until the next level-two heading. The
// TL;DR heading is matched case-insensitively.
func ExtractSections(body string) Sections {
	var tldr, list, actions []string
	var current *[]string

	body = strings.ReplaceAll(body, "\r\n", "\n")
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(strings.ToLower(trimmed), headingTLDR):
			current = &tldr
			continue
		case strings.HasPrefix(trimmed, headingList):
			current = &list
			continue
		case strings.HasPrefix(trimmed, headingActions):
			current = &actions
			continue
		case strings.HasPrefix(trimmed, headingPrefix):
			current = nil
		}
		if current != nil {
			*current = append(*current, line)
		}
	}

	return Sections{
		TLDR:    strings.TrimSpace(strings.Join(tldr, "\n")),
		List:    strings.TrimSpace(strings.Join(list, "\n")),
		Actions: strings.TrimSpace(strings.Join(actions, "\n")),
	}
}
