package mock

import (
	"context"

	"github.com/fwojciec/artcrawl"
)

var _ artcrawl.ArticleStore = (*ArticleStore)(nil)

// ArticleStore is a mock implementation of artcrawl.ArticleStore.
type ArticleStore struct {
	WriteArticlesFn func(ctx context.Context, articles []*artcrawl.Article) error
	ReadArticlesFn  func(ctx context.Context) ([]*artcrawl.Article, error)
}

func (s *ArticleStore) WriteArticles(ctx context.Context, articles []*artcrawl.Article) error {
	return s.WriteArticlesFn(ctx, articles)
}

func (s *ArticleStore) ReadArticles(ctx context.Context) ([]*artcrawl.Article, error) {
	return s.ReadArticlesFn(ctx)
}
