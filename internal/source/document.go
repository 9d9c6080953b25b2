package source

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// Document serves the text content of elements in an HTML page, keyed by
// their id attribute. This is how pages embed shaders in
// <script type="x-shader/x-vertex" id="..."> blocks.
type Document struct {
	elements map[string]string
}

// LoadDocument parses the HTML file at path.
func LoadDocument(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	doc, err := ParseDocument(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// ParseDocument parses HTML from r.
func ParseDocument(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	d := &Document{elements: make(map[string]string)}
	d.collect(root)
	return d, nil
}

// collect records every element carrying an id. The first element with a
// given id wins.
func (d *Document) collect(n *html.Node) {
	if n.Type == html.ElementNode {
		for _, attr := range n.Attr {
			if attr.Key != "id" {
				continue
			}
			if _, seen := d.elements[attr.Val]; !seen {
				var sb strings.Builder
				textContent(n, &sb)
				d.elements[attr.Val] = sb.String()
			}
			break
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.collect(c)
	}
}

func textContent(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		textContent(c, sb)
	}
}

// Len returns the number of elements indexed.
func (d *Document) Len() int {
	return len(d.elements)
}

// Lookup returns the text content of the element with the given id.
func (d *Document) Lookup(id string) (string, error) {
	src, ok := d.elements[id]
	if !ok {
		return "", fmt.Errorf("%w: no element with id %q", ErrNotFound, id)
	}
	return src, nil
}
