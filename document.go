package luego

// Parser turns raw HTML into a queryable document tree.
type Parser interface {
	// Parse builds a Document from raw HTML.
	// Returns EPARSE if the input cannot be parsed at all.
	Parse(html string) (Document, error)
}

// Document is a narrow capability interface over a parsed HTML document.
// The extraction heuristics depend only on this interface, not on a
// specific parsing library.
type Document interface {
	// Select returns the elements matching the CSS selector in document order.
	Select(selector string) []Element

	// Remove deletes every element matching the CSS selector from the
	// document, subtrees included.
	Remove(selector string)
}

// Element is a single element node in a parsed document.
type Element interface {
	// Text returns the element's plain text, descendants included.
	Text() string

	// HTML returns the element's inner HTML.
	HTML() (string, error)

	// Attr returns the named attribute's value and whether it is present.
	Attr(name string) (string, bool)

	// TagName returns the lowercase tag name (e.g. "p", "img").
	TagName() string

	// Parent returns the parent element, or nil at the document root.
	Parent() Element

	// Select returns descendant elements matching the CSS selector in
	// document order.
	Select(selector string) []Element

	// Equals reports whether the other element wraps the same underlying
	// node. It is the identity used by the ancestor dedupe walk.
	Equals(other Element) bool
}
