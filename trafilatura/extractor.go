// Package trafilatura implements luego.Extractor using go-trafilatura, a
// port of the Python trafilatura library. Its precision-oriented extraction
// complements the readability engine on news and blog layouts.
package trafilatura

import (
	"bytes"
	"context"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"

	"github.com/esoxjem/luego"
)

// minContentLength mirrors the heuristic engine's quality floor so the
// engines are interchangeable.
const minContentLength = 200

// Ensure Extractor implements luego.Extractor at compile time.
var _ luego.Extractor = (*Extractor)(nil)

// Extractor extracts article metadata and content via go-trafilatura.
type Extractor struct {
	fetcher   luego.Fetcher
	converter luego.Converter
}

// NewExtractor creates an Extractor using the given fetcher and converter.
func NewExtractor(fetcher luego.Fetcher, converter luego.Converter) *Extractor {
	return &Extractor{fetcher: fetcher, converter: converter}
}

// FetchMetadata fetches the page and extracts metadata only.
func (e *Extractor) FetchMetadata(ctx context.Context, rawURL string) (*luego.ArticleMetadata, error) {
	pageURL, result, err := e.run(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	return metadata(result, pageURL), nil
}

// FetchContent fetches the page and extracts metadata plus the article body
// as Markdown. Fails with ENOCONTENT when trafilatura finds too little text.
func (e *Extractor) FetchContent(ctx context.Context, rawURL string) (*luego.ArticleContent, error) {
	pageURL, result, err := e.run(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	if result.ContentNode == nil {
		return nil, luego.Errorf(luego.ENOCONTENT, "no article content found at %s", pageURL)
	}
	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, luego.Errorf(luego.EPARSE, "render content of %s: %v", pageURL, err)
	}

	content, err := e.converter.Convert(contentHTML)
	if err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(content) <= minContentLength {
		return nil, luego.Errorf(luego.ENOCONTENT, "no article content found at %s", pageURL)
	}

	meta := metadata(result, pageURL)
	meta.WordCount = luego.CountWords(content)

	return &luego.ArticleContent{
		ArticleMetadata: *meta,
		Content:         content,
	}, nil
}

// run validates the URL, fetches the page, and hands it to trafilatura.
func (e *Extractor) run(ctx context.Context, rawURL string) (*url.URL, *trafilatura.ExtractResult, error) {
	pageURL, err := luego.NormalizeURL(rawURL)
	if err != nil {
		return nil, nil, err
	}

	htmlSrc, err := e.fetcher.Fetch(ctx, pageURL.String())
	if err != nil {
		return nil, nil, luego.Errorf(luego.ENETWORK, "fetch %s: %v", pageURL, err)
	}

	opts := trafilatura.Options{
		EnableFallback: true,
		OriginalURL:    pageURL,
	}
	result, err := trafilatura.Extract(strings.NewReader(htmlSrc), opts)
	if err != nil {
		return nil, nil, luego.Errorf(luego.ENOCONTENT, "trafilatura %s: %v", pageURL, err)
	}

	return pageURL, result, nil
}

// metadata maps trafilatura metadata onto the domain metadata type.
func metadata(result *trafilatura.ExtractResult, pageURL *url.URL) *luego.ArticleMetadata {
	title := strings.TrimSpace(result.Metadata.Title)
	if title == "" {
		title = pageURL.Host
	}

	var thumbnail string
	if resolved, ok := luego.ResolveImageURL(result.Metadata.Image, pageURL); ok {
		thumbnail = resolved
	}

	var published *time.Time
	if !result.Metadata.Date.IsZero() {
		d := result.Metadata.Date
		published = &d
	}

	return &luego.ArticleMetadata{
		Title:        title,
		ThumbnailURL: thumbnail,
		Description:  strings.TrimSpace(result.Metadata.Description),
		Author:       strings.TrimSpace(result.Metadata.Author),
		PublishedAt:  published,
	}
}

// renderNode serializes an html.Node back to markup.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
