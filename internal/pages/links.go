package pages

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PrefixRootLinks prefixes root-relative img[src] and a[href] values in a
// rendered body fragment with basePath, so links written as "/weeks/..." in
// a record keep working when the site is served under a sub-path.
// An empty basePath, or a fragment without root-relative links, is returned
// unchanged.
func PrefixRootLinks(fragment, basePath string) (string, error) {
	base := NormalizeBasePath(basePath)
	if base == "" || !hasRootLink(fragment) {
		return fragment, nil
	}

	root, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}
	prefixNode(root, base)
	return renderFragment(root)
}

// hasRootLink is a cheap pre-check so untouched bodies skip reparsing.
func hasRootLink(s string) bool {
	return strings.Contains(s, `="/`) || strings.Contains(s, `='/`) || strings.Contains(s, `=/`)
}

// parseFragment parses s in body context and wraps the nodes in a
// document node for uniform traversal.
func parseFragment(s string) (*html.Node, error) {
	ctx := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(s), ctx)
	if err != nil {
		return nil, err
	}
	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// renderFragment renders the children of root without a document wrapper.
func renderFragment(root *html.Node) (string, error) {
	var buf strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func prefixNode(n *html.Node, base string) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			prefixAttr(n, "src", base)
		case atom.A:
			prefixAttr(n, "href", base)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		prefixNode(c, base)
	}
}

func prefixAttr(n *html.Node, key, base string) {
	for i, attr := range n.Attr {
		if attr.Key == key && isRootRelative(attr.Val, base) {
			n.Attr[i].Val = base + attr.Val
		}
	}
}

// isRootRelative reports whether p is a site path not yet under base.
// Protocol-relative URLs ("//host/x") are left alone.
func isRootRelative(p, base string) bool {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return false
	}
	return p != base && !strings.HasPrefix(p, base+"/")
}
