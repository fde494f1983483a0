package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/esoxjem/luego"
)

// Compile-time interface verification.
var _ luego.ArticleService = (*ArticleService)(nil)

// ArticleService implements luego.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// hashContent computes the xxHash of content as a hex string. Used to detect
// content drift when a URL is re-fetched.
func hashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// CreateArticle persists a new article, assigning its ID, content hash and
// save time. A URL can be saved only once.
func (s *ArticleService) CreateArticle(ctx context.Context, article *luego.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	article.ID = uuid.New().String()
	article.SavedAt = time.Now().UTC()
	article.ContentHash = hashContent(article.Content)

	var publishedAt any
	if article.PublishedAt != nil {
		publishedAt = article.PublishedAt.UTC().Format(time.RFC3339)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO articles (id, url, title, description, author, thumbnail_url, published_at, word_count, content, content_hash, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, article.ID, article.URL, article.Title, article.Description, article.Author,
		article.ThumbnailURL, publishedAt, article.WordCount, article.Content,
		article.ContentHash, article.SavedAt.Format(time.RFC3339))

	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return luego.Errorf(luego.EINVALID, "article already saved: %s", article.URL)
		}
		return err
	}

	return nil
}

// FindArticleByID retrieves an article by ID.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*luego.Article, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, url, title, description, author, thumbnail_url, published_at, word_count, content, content_hash, saved_at
		FROM articles
		WHERE id = ?
	`, id)

	article, err := scanArticle(row.Scan)
	if err == sql.ErrNoRows {
		return nil, luego.Errorf(luego.ENOTFOUND, "article not found")
	}
	if err != nil {
		return nil, err
	}

	return article, nil
}

// FindArticles retrieves articles matching the filter, newest first.
func (s *ArticleService) FindArticles(ctx context.Context, filter luego.ArticleFilter) ([]*luego.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, url, title, description, author, thumbnail_url, published_at, word_count, content, content_hash, saved_at FROM articles WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY saved_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*luego.Article
	for rows.Next() {
		article, err := scanArticle(rows.Scan)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}

	return articles, rows.Err()
}

// DeleteArticle permanently removes an article.
func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return luego.Errorf(luego.ENOTFOUND, "article not found")
	}

	return nil
}

// scanArticle reads one article row, decoding the nullable published_at and
// the RFC3339 saved_at columns.
func scanArticle(scan func(...any) error) (*luego.Article, error) {
	var article luego.Article
	var publishedAt sql.NullString
	var savedAt string

	if err := scan(&article.ID, &article.URL, &article.Title, &article.Description,
		&article.Author, &article.ThumbnailURL, &publishedAt, &article.WordCount,
		&article.Content, &article.ContentHash, &savedAt); err != nil {
		return nil, err
	}

	if publishedAt.Valid {
		t, err := time.Parse(time.RFC3339, publishedAt.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse published_at: %w", err)
		}
		article.PublishedAt = &t
	}

	t, err := time.Parse(time.RFC3339, savedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse saved_at: %w", err)
	}
	article.SavedAt = t

	return &article, nil
}
