// Package readability implements luego.Extractor using the go-readability
// port of Mozilla's Readability. It is an alternative to the heuristic
// engine in the extract package for pages the heuristics handle poorly.
package readability

import (
	"context"
	"net/url"
	"strings"
	"unicode/utf8"

	readability "github.com/go-shiori/go-readability"

	"github.com/esoxjem/luego"
)

// minContentLength mirrors the heuristic engine's quality floor so the two
// engines are interchangeable.
const minContentLength = 200

// Ensure Extractor implements luego.Extractor at compile time.
var _ luego.Extractor = (*Extractor)(nil)

// Extractor extracts article metadata and content via go-readability.
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
	pageURL, article, err := e.run(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	return metadata(article, pageURL), nil
}

// FetchContent fetches the page and extracts metadata plus the article body
// as Markdown. Fails with ENOCONTENT when readability finds too little text.
func (e *Extractor) FetchContent(ctx context.Context, rawURL string) (*luego.ArticleContent, error) {
	pageURL, article, err := e.run(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	content, err := e.converter.Convert(article.Content)
	if err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(content) <= minContentLength {
		return nil, luego.Errorf(luego.ENOCONTENT, "no article content found at %s", pageURL)
	}

	meta := metadata(article, pageURL)
	meta.WordCount = luego.CountWords(content)

	return &luego.ArticleContent{
		ArticleMetadata: *meta,
		Content:         content,
	}, nil
}

// run validates the URL, fetches the page, and hands it to readability.
func (e *Extractor) run(ctx context.Context, rawURL string) (*url.URL, readability.Article, error) {
	pageURL, err := luego.NormalizeURL(rawURL)
	if err != nil {
		return nil, readability.Article{}, err
	}

	html, err := e.fetcher.Fetch(ctx, pageURL.String())
	if err != nil {
		return nil, readability.Article{}, luego.Errorf(luego.ENETWORK, "fetch %s: %v", pageURL, err)
	}

	article, err := readability.FromReader(strings.NewReader(html), pageURL)
	if err != nil {
		return nil, readability.Article{}, luego.Errorf(luego.EPARSE, "readability %s: %v", pageURL, err)
	}

	return pageURL, article, nil
}

// metadata maps a readability article onto the domain metadata type.
func metadata(article readability.Article, pageURL *url.URL) *luego.ArticleMetadata {
	title := strings.TrimSpace(article.Title)
	if title == "" {
		title = pageURL.Host
	}

	var thumbnail string
	if resolved, ok := luego.ResolveImageURL(article.Image, pageURL); ok {
		thumbnail = resolved
	}

	return &luego.ArticleMetadata{
		Title:        title,
		ThumbnailURL: thumbnail,
		Description:  strings.TrimSpace(article.Excerpt),
		Author:       strings.TrimSpace(article.Byline),
		PublishedAt:  article.PublishedTime,
	}
}
