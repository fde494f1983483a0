package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/esoxjem/luego"
	main "github.com/esoxjem/luego/cmd/luego"
	"github.com/esoxjem/luego/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists articles with ID, title, and URL", func(t *testing.T) {
		t.Parallel()

		articles := &mock.ArticleService{
			FindArticlesFn: func(_ context.Context, _ luego.ArticleFilter) ([]*luego.Article, error) {
				return []*luego.Article{
					{
						ID:      "art-123",
						Title:   "Understanding Goroutines",
						URL:     "https://blog.example.com/goroutines",
						SavedAt: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
					},
					{
						ID:      "art-456",
						Title:   "SQLite in Production",
						URL:     "https://blog.example.com/sqlite",
						SavedAt: time.Date(2025, 1, 16, 11, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Articles: articles,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "art-123")
		assert.Contains(t, output, "art-456")
		assert.Contains(t, output, "Understanding Goroutines")
		assert.Contains(t, output, "SQLite in Production")
		assert.Contains(t, output, "https://blog.example.com/goroutines")
		assert.Contains(t, output, "https://blog.example.com/sqlite")
	})

	t.Run("passes limit and offset to the filter", func(t *testing.T) {
		t.Parallel()

		var receivedFilter luego.ArticleFilter
		articles := &mock.ArticleService{
			FindArticlesFn: func(_ context.Context, filter luego.ArticleFilter) ([]*luego.Article, error) {
				receivedFilter = filter
				return []*luego.Article{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Articles: articles,
		}

		cmd := &main.ListCmd{Limit: 10, Offset: 5}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 10, receivedFilter.Limit)
		assert.Equal(t, 5, receivedFilter.Offset)
	})

	t.Run("shows helpful message when no articles exist", func(t *testing.T) {
		t.Parallel()

		articles := &mock.ArticleService{
			FindArticlesFn: func(_ context.Context, _ luego.ArticleFilter) ([]*luego.Article, error) {
				return []*luego.Article{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Articles: articles,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No articles")
	})

	t.Run("returns error when FindArticles fails", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database connection failed")

		articles := &mock.ArticleService{
			FindArticlesFn: func(_ context.Context, _ luego.ArticleFilter) ([]*luego.Article, error) {
				return nil, dbErr
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Articles: articles,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, dbErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
