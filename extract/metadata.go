package extract

import (
	"net/url"
	"strings"
	"time"

	"github.com/esoxjem/luego"
)

// publishedSelectors are scanned in order; the first value that parses as a
// date wins.
var publishedSelectors = []struct {
	selector string
	attr     string
}{
	{`meta[property='article:published_time']`, "content"},
	{`meta[name='article:published_time']`, "content"},
	{`meta[property='og:published_time']`, "content"},
	{`meta[name='published_time']`, "content"},
	{`meta[name='datePublished']`, "content"},
	{`meta[itemprop='datePublished']`, "content"},
	{`time[datetime]`, "datetime"},
	{`meta[property='article:published']`, "content"},
}

// authorSelectors are scanned in order; an empty attr means the element's
// text is used instead of an attribute.
var authorSelectors = []struct {
	selector string
	attr     string
}{
	{`meta[name='author']`, "content"},
	{`meta[property='article:author']`, "content"},
	{`[rel='author']`, ""},
	{`[itemprop='author']`, ""},
}

// extractMetadata pulls title, description, thumbnail, author and published
// date from the document: Open Graph tags first, standard tags as fallback,
// the URL host as last resort for the title.
func extractMetadata(doc luego.Document, pageURL *url.URL) *luego.ArticleMetadata {
	title := attrValue(doc, `meta[property='og:title']`, "content")
	if title == "" {
		title = textValue(doc, "title")
	}
	if title == "" {
		title = pageURL.Host
	}

	description := attrValue(doc, `meta[property='og:description']`, "content")
	if description == "" {
		description = attrValue(doc, `meta[name='description']`, "content")
	}

	image := attrValue(doc, `meta[property='og:image']`, "content")
	if image == "" {
		image = firstContentImage(doc)
	}
	var thumbnail string
	if image != "" {
		if resolved, ok := luego.ResolveImageURL(image, pageURL); ok {
			thumbnail = resolved
		}
	}

	return &luego.ArticleMetadata{
		Title:        title,
		ThumbnailURL: thumbnail,
		Description:  description,
		Author:       authorName(doc),
		PublishedAt:  publishedDate(doc),
	}
}

// publishedDate scans the selector/attribute pairs in order and returns the
// first value the date parser accepts.
func publishedDate(doc luego.Document) *time.Time {
	for _, probe := range publishedSelectors {
		raw := attrValue(doc, probe.selector, probe.attr)
		if raw == "" {
			continue
		}
		if t, ok := luego.ParseDate(raw); ok {
			return &t
		}
	}
	return nil
}

// authorName scans conventional author markers in order.
func authorName(doc luego.Document) string {
	for _, probe := range authorSelectors {
		var value string
		if probe.attr == "" {
			value = textValue(doc, probe.selector)
		} else {
			value = attrValue(doc, probe.selector, probe.attr)
		}
		if value != "" {
			return value
		}
	}
	return ""
}

// attrValue returns the trimmed attribute of the first element matching the
// selector, or "".
func attrValue(doc luego.Document, selector, attr string) string {
	els := doc.Select(selector)
	if len(els) == 0 {
		return ""
	}
	value, _ := els[0].Attr(attr)
	return strings.TrimSpace(value)
}

// textValue returns the trimmed text of the first element matching the
// selector, or "".
func textValue(doc luego.Document, selector string) string {
	els := doc.Select(selector)
	if len(els) == 0 {
		return ""
	}
	return strings.TrimSpace(els[0].Text())
}
