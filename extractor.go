package luego

import "context"

// Extractor turns a URL into clean article metadata or content.
//
// Both operations require an http(s) URL and return typed failures:
// EINVALID for malformed input, ENETWORK for transport failures, EPARSE
// when the HTML cannot be parsed, and ENOCONTENT when no extraction tier
// produced enough text. Implementations are pure per-call transformations
// with no shared mutable state; concurrent calls are independent.
type Extractor interface {
	// FetchMetadata fetches the page and extracts metadata only.
	FetchMetadata(ctx context.Context, url string) (*ArticleMetadata, error)

	// FetchContent fetches the page and extracts metadata plus the article
	// body rendered as Markdown.
	FetchContent(ctx context.Context, url string) (*ArticleContent, error)
}
