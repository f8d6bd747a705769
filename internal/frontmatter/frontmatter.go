// Package frontmatter splits a record file into its metadata header and
// markdown body.
//
// A header is the text between a "---" line at the very start of the file
// and the next "---" line. It is decoded as YAML first; an unquoted
// single-line scalar keeps the text exactly as written, so "8.50", "007" and
// "AI #1" are not reshaped by YAML typing or comment rules. Headers that are not
// valid YAML fall back to a permissive line scanner, so a broken header
// degrades to partial metadata instead of failing the build. Parse never
// returns an error; consumers read fields through Document accessors, which
// apply the defaults.
package frontmatter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-weeklysite/internal/dateutil"
	"github.com/alnah/go-weeklysite/internal/yamlutil"
)

// Delimiter opens and closes the header block.
const Delimiter = "---"

const (
	commentMarker  = "#"
	listItemMarker = "-"
	listOpenMarker = "["
	listEndMarker  = "]"
	byteOrderMark  = "\uFEFF"
)

// Value is one header field: either a scalar string or an ordered list.
type Value struct {
	Text  string
	Items []string
	List  bool
}

// Document is a parsed record file.
type Document struct {
	Fields map[string]Value
	Body   string
}

// String returns the scalar value of key, or "" when the key is absent or
// holds a list.
func (d Document) String(key string) string {
	v, ok := d.Fields[key]
	if !ok || v.List {
		return ""
	}
	return v.Text
}

// Strings returns the list value of key. A non-empty scalar is returned as a
// one-element list; an absent key yields nil.
func (d Document) Strings(key string) []string {
	v, ok := d.Fields[key]
	if !ok {
		return nil
	}
	if v.List {
		return append([]string(nil), v.Items...)
	}
	if v.Text == "" {
		return nil
	}
	return []string{v.Text}
}

// Has reports whether the header declared key.
func (d Document) Has(key string) bool {
	_, ok := d.Fields[key]
	return ok
}

// Keys returns the declared field names in sorted order.
func (d Document) Keys() []string {
	keys := make([]string, 0, len(d.Fields))
	for k := range d.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Parse splits text into header fields and body.
func Parse(text string) Document {
	header, body, ok := Split(text)
	if !ok {
		return Document{Fields: map[string]Value{}, Body: normalize(text)}
	}

	fields, err := decodeYAML(header)
	if err != nil {
		fields = scanLines(header)
	}
	return Document{Fields: fields, Body: body}
}

// Split returns the raw header and the body. ok is false when text does not
// open with a delimiter line or the delimiter is never closed; in that case
// header is empty and body is the whole (normalized) text.
func Split(text string) (header, body string, ok bool) {
	text = normalize(text)

	first, rest, found := strings.Cut(text, "\n")
	if strings.TrimRight(first, " \t") != Delimiter {
		return "", text, false
	}
	if !found {
		return "", text, false
	}

	var headerLines []string
	remaining := rest
	for {
		line, after, more := strings.Cut(remaining, "\n")
		if strings.TrimRight(line, " \t") == Delimiter {
			if !more {
				after = ""
			}
			return strings.Join(headerLines, "\n"), after, true
		}
		if !more {
			return "", text, false
		}
		headerLines = append(headerLines, line)
		remaining = after
	}
}

// normalize strips a leading BOM and converts CRLF/CR line endings to LF.
func normalize(text string) string {
	text = strings.TrimPrefix(text, byteOrderMark)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// decodeYAML decodes header as a YAML mapping and flattens every value to a
// scalar string or a list of strings.
func decodeYAML(header string) (map[string]Value, error) {
	raw, err := yamlutil.UnmarshalMap([]byte(header))
	if err != nil {
		return nil, err
	}

	plain := plainScalars(header)
	fields := make(map[string]Value, len(raw))
	for key, v := range raw {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		value := toValue(v)
		if text, ok := plain[key]; ok && !value.List && v != nil {
			value.Text = text
		}
		fields[key] = value
	}
	return fields, nil
}

// plainScalars returns the written text of unindented "key: value" lines
// whose value is an unquoted scalar on a single line. Quoted, block, flow and
// multi-line values are left to the YAML decoder.
func plainScalars(header string) map[string]string {
	plain := map[string]string{}
	lines := strings.Split(header, "\n")
	for i, line := range lines {
		if line == "" || isIndented(line) || strings.HasPrefix(line, commentMarker) {
			continue
		}
		key, val, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		if key == "" || val == "" || !isPlain(val) {
			continue
		}
		if i+1 < len(lines) && isIndented(lines[i+1]) && strings.TrimSpace(lines[i+1]) != "" {
			continue
		}
		plain[key] = val
	}
	return plain
}

func isIndented(line string) bool {
	return strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
}

// isPlain reports whether val is written as a YAML plain scalar.
func isPlain(val string) bool {
	if val == listItemMarker || strings.HasPrefix(val, listItemMarker+" ") {
		return false
	}
	return !strings.ContainsAny(val[:1], `"'|>[{&*!%@`+"`")
}

func toValue(v any) Value {
	switch t := v.(type) {
	case []any:
		items := make([]string, 0, len(t))
		for _, item := range t {
			if item == nil {
				continue
			}
			items = append(items, toScalar(item))
		}
		return Value{Items: items, List: true}
	case []string:
		return Value{Items: append([]string(nil), t...), List: true}
	default:
		return Value{Text: toScalar(v)}
	}
}

func toScalar(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case time.Time:
		return dateutil.Format(t)
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// scanLines is the permissive fallback for headers that are not valid YAML.
// Lines without a colon and list items that do not follow a list opener are
// ignored.
func scanLines(header string) map[string]Value {
	fields := map[string]Value{}
	lines := strings.Split(header, "\n")

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || strings.HasPrefix(line, commentMarker) {
			continue
		}
		key, val, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		if key == "" || strings.HasPrefix(key, listItemMarker) {
			continue
		}

		if !opensList(val, lines[i+1:]) {
			fields[key] = Value{Text: unquote(val)}
			continue
		}

		items := inlineItems(val)
		for i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if !strings.HasPrefix(next, listItemMarker) {
				break
			}
			if item := unquote(strings.TrimSpace(strings.TrimPrefix(next, listItemMarker))); item != "" {
				items = append(items, item)
			}
			i++
		}
		fields[key] = Value{Items: items, List: true}
	}
	return fields
}

// opensList reports whether val starts a list: an inline "[...]" value, a
// "- item" on the key line, or an empty value followed by "- item" lines.
func opensList(val string, following []string) bool {
	if strings.HasPrefix(val, listOpenMarker) || strings.HasPrefix(val, listItemMarker) {
		return true
	}
	if val != "" || len(following) == 0 {
		return false
	}
	return strings.HasPrefix(strings.TrimSpace(following[0]), listItemMarker)
}

// inlineItems extracts items written on the key line itself.
func inlineItems(val string) []string {
	var items []string
	switch {
	case strings.HasPrefix(val, listOpenMarker):
		inner := strings.TrimPrefix(val, listOpenMarker)
		inner = strings.TrimSuffix(strings.TrimSpace(inner), listEndMarker)
		for _, part := range strings.Split(inner, ",") {
			if item := unquote(strings.TrimSpace(part)); item != "" {
				items = append(items, item)
			}
		}
	case strings.HasPrefix(val, listItemMarker):
		if item := unquote(strings.TrimSpace(strings.TrimPrefix(val, listItemMarker))); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// unquote trims whitespace and any surrounding quote characters.
func unquote(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), `"'`))
}
