package luego

import (
	"context"
	"strings"
	"time"
)

// ArticleMetadata holds the metadata extracted from an article page.
// It is an immutable value produced per extraction call; zero values mean
// the field was unavailable. Title is never empty on success (it falls back
// to the URL's host).
type ArticleMetadata struct {
	Title        string     `json:"title"`
	ThumbnailURL string     `json:"thumbnailUrl,omitempty"`
	Description  string     `json:"description,omitempty"`
	Author       string     `json:"author,omitempty"`
	PublishedAt  *time.Time `json:"publishedAt,omitempty"`
	WordCount    int        `json:"wordCount,omitempty"`
}

// ArticleContent is ArticleMetadata plus the article body as a Markdown
// document. Content is longer than 200 characters on success; extraction
// fails rather than returning low-quality output below that floor.
type ArticleContent struct {
	ArticleMetadata
	Content string `json:"content"`
}

// Article represents an extracted article persisted in the reading list.
type Article struct {
	ID           string     `json:"id"`
	URL          string     `json:"url"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Author       string     `json:"author,omitempty"`
	ThumbnailURL string     `json:"thumbnailUrl,omitempty"`
	PublishedAt  *time.Time `json:"publishedAt,omitempty"`
	WordCount    int        `json:"wordCount,omitempty"`
	Content      string     `json:"content"`
	ContentHash  string     `json:"contentHash"`
	SavedAt      time.Time  `json:"savedAt"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.URL == "" {
		return Errorf(EINVALID, "article URL required")
	}
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	if a.Content == "" {
		return Errorf(EINVALID, "article content required")
	}
	return nil
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ArticleService represents a service for managing saved articles.
type ArticleService interface {
	// CreateArticle saves a new article.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticleByID retrieves an article by ID.
	// Returns ENOTFOUND if the article does not exist.
	FindArticleByID(ctx context.Context, id string) (*Article, error)

	// FindArticles retrieves articles matching the filter, newest first.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// DeleteArticle permanently removes an article.
	// Returns ENOTFOUND if the article does not exist.
	DeleteArticle(ctx context.Context, id string) error
}

// CountWords returns the number of whitespace-separated words in s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}
