package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/artcrawl"
)

// Ensure LoggingStore implements artcrawl.ArticleStore.
var _ artcrawl.ArticleStore = (*LoggingStore)(nil)

// LoggingStore wraps an ArticleStore with logging.
type LoggingStore struct {
	next   artcrawl.ArticleStore
	path   string
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore. The path is only used as a log attribute.
func NewLoggingStore(next artcrawl.ArticleStore, path string, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, path: path, logger: logger}
}

// WriteArticles delegates to the wrapped store and logs the operation.
func (s *LoggingStore) WriteArticles(ctx context.Context, articles []*artcrawl.Article) (err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelError
		}
		s.logger.Log(ctx, level, "write articles",
			"path", s.path,
			"count", len(articles),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WriteArticles(ctx, articles)
}

// ReadArticles delegates to the wrapped store and logs the operation.
func (s *LoggingStore) ReadArticles(ctx context.Context) (articles []*artcrawl.Article, err error) {
	defer func(begin time.Time) {
		s.logger.DebugContext(ctx, "read articles",
			"path", s.path,
			"count", len(articles),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadArticles(ctx)
}
