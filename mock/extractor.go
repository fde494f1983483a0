package mock

import (
	"context"

	"github.com/esoxjem/luego"
)

var _ luego.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of luego.Extractor.
type Extractor struct {
	FetchMetadataFn func(ctx context.Context, url string) (*luego.ArticleMetadata, error)
	FetchContentFn  func(ctx context.Context, url string) (*luego.ArticleContent, error)
}

func (e *Extractor) FetchMetadata(ctx context.Context, url string) (*luego.ArticleMetadata, error) {
	return e.FetchMetadataFn(ctx, url)
}

func (e *Extractor) FetchContent(ctx context.Context, url string) (*luego.ArticleContent, error) {
	return e.FetchContentFn(ctx, url)
}
