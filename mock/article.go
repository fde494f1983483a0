package mock

import (
	"context"

	"github.com/esoxjem/luego"
)

var _ luego.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of luego.ArticleService.
type ArticleService struct {
	CreateArticleFn   func(ctx context.Context, article *luego.Article) error
	FindArticleByIDFn func(ctx context.Context, id string) (*luego.Article, error)
	FindArticlesFn    func(ctx context.Context, filter luego.ArticleFilter) ([]*luego.Article, error)
	DeleteArticleFn   func(ctx context.Context, id string) error
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *luego.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*luego.Article, error) {
	return s.FindArticleByIDFn(ctx, id)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter luego.ArticleFilter) ([]*luego.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	return s.DeleteArticleFn(ctx, id)
}
