// Package goquery provides a goquery-backed implementation of the
// luego.Parser, luego.Document and luego.Element capability interfaces.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/esoxjem/luego"
)

// Ensure interface compliance at compile time.
var (
	_ luego.Parser   = (*Parser)(nil)
	_ luego.Document = (*Document)(nil)
	_ luego.Element  = (*Element)(nil)
)

// Parser parses HTML with goquery.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse builds a Document from raw HTML.
func (p *Parser) Parse(html string) (luego.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, luego.Errorf(luego.EPARSE, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// Document wraps a goquery document.
type Document struct {
	doc *goquery.Document
}

// Select returns the elements matching the CSS selector in document order.
func (d *Document) Select(selector string) []luego.Element {
	return collect(d.doc.Find(selector))
}

// Remove deletes every element matching the CSS selector from the document.
func (d *Document) Remove(selector string) {
	d.doc.Find(selector).Remove()
}

// Element wraps a single-node goquery selection.
type Element struct {
	sel *goquery.Selection
}

// Text returns the element's plain text, descendants included.
func (e *Element) Text() string {
	return e.sel.Text()
}

// HTML returns the element's inner HTML.
func (e *Element) HTML() (string, error) {
	return e.sel.Html()
}

// Attr returns the named attribute's value and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

// TagName returns the lowercase tag name.
func (e *Element) TagName() string {
	return goquery.NodeName(e.sel)
}

// Parent returns the parent element, or nil at the document root.
func (e *Element) Parent() luego.Element {
	parent := e.sel.Parent()
	if parent.Length() == 0 {
		return nil
	}
	return &Element{sel: parent}
}

// Select returns descendant elements matching the CSS selector in document order.
func (e *Element) Select(selector string) []luego.Element {
	return collect(e.sel.Find(selector))
}

// Equals reports whether the other element wraps the same underlying node.
func (e *Element) Equals(other luego.Element) bool {
	o, ok := other.(*Element)
	if !ok {
		return false
	}
	if len(e.sel.Nodes) == 0 || len(o.sel.Nodes) == 0 {
		return false
	}
	return e.sel.Nodes[0] == o.sel.Nodes[0]
}

// collect splits a multi-node selection into per-node elements,
// preserving document order.
func collect(sel *goquery.Selection) []luego.Element {
	var elements []luego.Element
	sel.Each(func(_ int, s *goquery.Selection) {
		elements = append(elements, &Element{sel: s})
	})
	return elements
}
