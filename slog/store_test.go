package slog_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/artcrawl"
	"github.com/fwojciec/artcrawl/mock"
	crawlslog "github.com/fwojciec/artcrawl/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingStore_WriteArticles(t *testing.T) {
	t.Parallel()

	t.Run("logs path and count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ArticleStore{
			WriteArticlesFn: func(_ context.Context, _ []*artcrawl.Article) error {
				return nil
			},
		}

		store := crawlslog.NewLoggingStore(inner, "out/articles.json", newDebugLogger(&buf))
		err := store.WriteArticles(context.Background(), []*artcrawl.Article{{ID: "a"}, {ID: "b"}})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "path=out/articles.json")
		assert.Contains(t, output, "count=2")
	})

	t.Run("logs failure at error level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ArticleStore{
			WriteArticlesFn: func(_ context.Context, _ []*artcrawl.Article) error {
				return errors.New("disk full")
			},
		}

		store := crawlslog.NewLoggingStore(inner, "out/articles.json", newDebugLogger(&buf))
		err := store.WriteArticles(context.Background(), nil)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, "err=\"disk full\"")
	})
}

func TestLoggingStore_ReadArticles(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	want := []*artcrawl.Article{{ID: "a", Article: "long", Description: "d"}}
	inner := &mock.ArticleStore{
		ReadArticlesFn: func(_ context.Context) ([]*artcrawl.Article, error) {
			return want, nil
		},
	}

	store := crawlslog.NewLoggingStore(inner, "out/articles.json", newDebugLogger(&buf))
	got, err := store.ReadArticles(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Contains(t, buf.String(), "read articles")
}
