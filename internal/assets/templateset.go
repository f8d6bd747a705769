package assets

import "fmt"

// DefaultTemplateSetName is the name of the built-in template set.
const DefaultTemplateSetName = "default"

// DefaultStyleName is the name of the built-in CSS style.
const DefaultStyleName = "default"

// Template file names, without the .html extension.
const (
	TemplateLayout   = "layout"
	TemplatePartials = "partials"
	TemplateItem     = "item"
	TemplateWeek     = "week"
	TemplateArchive  = "archive"
	TemplateTags     = "tags"
	TemplateTag      = "tag"
	TemplateSearch   = "search"
	TemplateHome     = "home"
)

// RequiredTemplates lists the files every template set must provide.
var RequiredTemplates = []string{
	TemplateLayout,
	TemplatePartials,
	TemplateItem,
	TemplateWeek,
	TemplateArchive,
	TemplateTags,
	TemplateTag,
	TemplateSearch,
	TemplateHome,
}

// PageTemplates lists the templates that each define one page's content.
var PageTemplates = RequiredTemplates[2:]

// TemplateSet holds the raw sources of one template directory.
type TemplateSet struct {
	Name  string            // Identifier (name or directory path)
	Files map[string]string // Template name -> source
}

// Source returns the source of the named template.
func (ts *TemplateSet) Source(name string) (string, error) {
	src, ok := ts.Files[name]
	if !ok {
		return "", fmt.Errorf("%w: %q missing %s.html", ErrIncompleteTemplateSet, ts.Name, name)
	}
	return src, nil
}

// newTemplateSet collects the required templates through read. read reports
// a missing file with ok == false.
func newTemplateSet(name string, read func(file string) (content string, ok bool, err error)) (*TemplateSet, error) {
	files := make(map[string]string, len(RequiredTemplates))
	var missing []string
	for _, tmpl := range RequiredTemplates {
		content, ok, err := read(tmpl + ".html")
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s.html: %v", ErrAssetRead, tmpl, err)
		}
		if !ok {
			missing = append(missing, tmpl+".html")
			continue
		}
		files[tmpl] = content
	}

	if len(missing) == len(RequiredTemplates) {
		return nil, fmt.Errorf("%w: %q", ErrTemplateSetNotFound, name)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %q missing %v", ErrIncompleteTemplateSet, name, missing)
	}
	return &TemplateSet{Name: name, Files: files}, nil
}
