// Package extract implements the heuristic article-extraction engine:
// Open-Graph-first metadata, selector-priority content location, an ordered
// regex pipeline rendering the content as Markdown, and a plain-text
// fallback tier for pages the Markdown conversion cannot handle.
//
// The heuristics depend only on the luego.Document/Element capability
// interfaces, not on a specific HTML parser.
package extract

import (
	"context"
	"net/url"
	"unicode/utf8"

	"github.com/esoxjem/luego"
)

// minContentLength is the quality floor: extraction fails rather than
// returning content at or below this many characters.
const minContentLength = 200

// noiseSelector matches the subtrees stripped before content extraction.
const noiseSelector = "script, style, nav, header, footer, aside, iframe, .ad, .advertisement, .social-share"

// Ensure Engine implements luego.Extractor at compile time.
var _ luego.Extractor = (*Engine)(nil)

// Engine extracts article metadata and Markdown content from web pages.
// It is a pure per-call transformation with no shared mutable state;
// concurrent calls are independent.
type Engine struct {
	fetcher luego.Fetcher
	parser  luego.Parser

	// fallback produces plain text when the Markdown conversion comes up
	// short. Held as a field so tests can observe when the second tier
	// fires.
	fallback func(container luego.Element, parser luego.Parser) string
}

// New creates an Engine using the given fetcher and parser.
func New(fetcher luego.Fetcher, parser luego.Parser) *Engine {
	return &Engine{
		fetcher:  fetcher,
		parser:   parser,
		fallback: plainText,
	}
}

// FetchMetadata fetches the page and extracts metadata only.
func (e *Engine) FetchMetadata(ctx context.Context, rawURL string) (*luego.ArticleMetadata, error) {
	pageURL, doc, err := e.load(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	return extractMetadata(doc, pageURL), nil
}

// FetchContent fetches the page and extracts metadata plus the article body
// as Markdown. When the Markdown conversion yields too little text the
// plain-text fallback runs; if that is also too short the call fails with
// ENOCONTENT.
func (e *Engine) FetchContent(ctx context.Context, rawURL string) (*luego.ArticleContent, error) {
	pageURL, doc, err := e.load(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	doc.Remove(noiseSelector)

	meta := extractMetadata(doc, pageURL)

	container, err := locateContainer(doc)
	if err != nil {
		return nil, err
	}

	content := toMarkdown(container, pageURL)
	if utf8.RuneCountInString(content) <= minContentLength {
		content = e.fallback(container, e.parser)
	}
	if utf8.RuneCountInString(content) <= minContentLength {
		return nil, luego.Errorf(luego.ENOCONTENT, "no article content found at %s", pageURL)
	}

	meta.WordCount = luego.CountWords(content)

	return &luego.ArticleContent{
		ArticleMetadata: *meta,
		Content:         content,
	}, nil
}

// load validates the URL, fetches the page, and parses it.
func (e *Engine) load(ctx context.Context, rawURL string) (*url.URL, luego.Document, error) {
	pageURL, err := luego.NormalizeURL(rawURL)
	if err != nil {
		return nil, nil, err
	}

	html, err := e.fetcher.Fetch(ctx, pageURL.String())
	if err != nil {
		return nil, nil, luego.Errorf(luego.ENETWORK, "fetch %s: %v", pageURL, err)
	}

	doc, err := e.parser.Parse(html)
	if err != nil {
		return nil, nil, luego.Errorf(luego.EPARSE, "parse %s: %v", pageURL, err)
	}

	return pageURL, doc, nil
}
