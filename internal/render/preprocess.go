package render

import (
	"regexp"
)

// crlfOrCR matches Windows and old Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Preprocessor normalizes markdown before conversion.
type Preprocessor struct{}

// Process converts line endings to \n. Blank lines are left alone: markdown
// already folds them between blocks, and inside code blocks they are content.
func (p *Preprocessor) Process(markdown string) string {
	return crlfOrCR.ReplaceAllString(markdown, "\n")
}
