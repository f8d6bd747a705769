// Package dateutil normalizes the free-form date strings found in record
// headers. Dates stay strings throughout the site (archive order compares
// them as text), so this package only converts at the edges: YAML timestamps
// into ISO text, and ISO-ish text into time.Time for the feed.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate indicates a value that matches none of the known layouts.
var ErrInvalidDate = errors.New("invalid date")

// ISOLayout is the layout dates are normalized to.
const ISOLayout = "2006-01-02"

// MaxDateLength limits input length to prevent abuse.
const MaxDateLength = 50

// layouts are tried in order by Parse. ISO forms come first since they are
// the only ones that also sort correctly as text.
var layouts = []string{
	ISOLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02",
	"2006.01.02",
	"2006年1月2日",
	"January 2, 2006",
	"Jan 2, 2006",
}

// Format renders t as YYYY-MM-DD. A time carrying only a date (midnight)
// and a full timestamp both collapse to the date part.
func Format(t time.Time) string {
	return t.Format(ISOLayout)
}

// Parse converts a date string to time.Time using the known layouts.
// Surrounding whitespace is ignored. Returns ErrInvalidDate if no layout
// matches or the value is empty or too long.
func Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}
	if len(value) > MaxDateLength {
		return time.Time{}, fmt.Errorf("%w: value exceeds %d characters", ErrInvalidDate, MaxDateLength)
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// Normalize returns value in YYYY-MM-DD form when it parses, and the trimmed
// input unchanged otherwise.
func Normalize(value string) string {
	t, err := Parse(value)
	if err != nil {
		return strings.TrimSpace(value)
	}
	return Format(t)
}
