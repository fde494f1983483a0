// Package mock provides mock implementations of luego interfaces for testing.
package mock

import (
	"context"

	"github.com/esoxjem/luego"
)

var _ luego.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of luego.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
