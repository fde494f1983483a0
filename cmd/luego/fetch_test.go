package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/esoxjem/luego"
	main "github.com/esoxjem/luego/cmd/luego"
	"github.com/esoxjem/luego/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints metadata header and content", func(t *testing.T) {
		t.Parallel()

		published := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)
		extractor := &mock.Extractor{
			FetchContentFn: func(_ context.Context, url string) (*luego.ArticleContent, error) {
				assert.Equal(t, "https://example.com/post", url)
				return &luego.ArticleContent{
					ArticleMetadata: luego.ArticleMetadata{
						Title:       "How Things Work",
						Author:      "Jane Dev",
						PublishedAt: &published,
						WordCount:   1200,
					},
					Content: "The full article body in Markdown.",
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Extractor: extractor,
		}

		cmd := &main.FetchCmd{URL: "https://example.com/post"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "# How Things Work")
		assert.Contains(t, output, "Author: Jane Dev")
		assert.Contains(t, output, "Published: 2023-06-15")
		assert.Contains(t, output, "Words: 1200")
		assert.Contains(t, output, "The full article body in Markdown.")
		assert.Empty(t, stderr.String())
	})

	t.Run("with --metadata-only skips content extraction", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.Extractor{
			FetchMetadataFn: func(_ context.Context, url string) (*luego.ArticleMetadata, error) {
				return &luego.ArticleMetadata{
					Title:        "Metadata Only",
					Description:  "A short summary.",
					ThumbnailURL: "https://example.com/thumb.jpg",
				}, nil
			},
			FetchContentFn: func(_ context.Context, _ string) (*luego.ArticleContent, error) {
				t.Error("FetchContent should not be called in metadata-only mode")
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Extractor: extractor,
		}

		cmd := &main.FetchCmd{URL: "https://example.com/post", MetadataOnly: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "# Metadata Only")
		assert.Contains(t, output, "Description: A short summary.")
		assert.Contains(t, output, "Thumbnail: https://example.com/thumb.jpg")
		assert.Empty(t, stderr.String())
	})

	t.Run("omits empty metadata fields", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.Extractor{
			FetchContentFn: func(_ context.Context, _ string) (*luego.ArticleContent, error) {
				return &luego.ArticleContent{
					ArticleMetadata: luego.ArticleMetadata{Title: "Bare"},
					Content:         "Body.",
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Extractor: extractor,
		}

		cmd := &main.FetchCmd{URL: "https://example.com/post"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "# Bare")
		assert.NotContains(t, output, "Author:")
		assert.NotContains(t, output, "Published:")
		assert.NotContains(t, output, "Description:")
		assert.NotContains(t, output, "Thumbnail:")
	})

	t.Run("returns error when extraction fails", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.Extractor{
			FetchContentFn: func(_ context.Context, url string) (*luego.ArticleContent, error) {
				return nil, luego.Errorf(luego.ENOCONTENT, "no article content found at %s", url)
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Extractor: extractor,
		}

		cmd := &main.FetchCmd{URL: "https://example.com/empty"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
		assert.Contains(t, stderr.String(), "no article content found")
		assert.Empty(t, stdout.String())
	})
}
