package render

import (
	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips unsafe markup from converter output.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer builds a Sanitizer on the bluemonday UGC policy, extended with
// class attributes for math spans and highlighted code, and heading ids for
// in-page anchors.
func NewSanitizer() *Sanitizer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).Globally()
	policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6", "section", "li")
	policy.AllowElements("table", "thead", "tbody", "tr", "th", "td", "section", "mark", "span", "div")
	return &Sanitizer{policy: policy}
}

// Sanitize returns the cleaned fragment.
func (s *Sanitizer) Sanitize(fragment string) string {
	return s.policy.Sanitize(fragment)
}
