package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/artcrawl"
)

// indent matches the layout expected by the downstream analysis scripts.
const indent = "    "

// Ensure Store implements artcrawl.ArticleStore at compile time.
var _ artcrawl.ArticleStore = (*Store)(nil)

// Store keeps articles in a single pretty-printed JSON document.
// Writes go to a temporary file in the destination directory which is then
// renamed over the target, so readers see either the old or the new document.
type Store struct {
	path string
}

// NewStore creates a Store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the document path.
func (s *Store) Path() string {
	return s.path
}

// WriteArticles replaces the document with articles.
// Parent directories are created as needed.
func (s *Store) WriteArticles(ctx context.Context, articles []*artcrawl.Article) error {
	for _, a := range articles {
		if err := a.Validate(); err != nil {
			return err
		}
	}

	data, err := Marshal(articles)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("rename to %s: %w", s.path, err)
	}
	return nil
}

// ReadArticles reads the document back.
// Returns ENOTFOUND if the document does not exist.
func (s *Store) ReadArticles(ctx context.Context) ([]*artcrawl.Article, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, artcrawl.Errorf(artcrawl.ENOTFOUND, "article document %q not found", s.path)
	} else if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var articles []*artcrawl.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, artcrawl.Errorf(artcrawl.EINVALID, "decode %s: %v", s.path, err)
	}
	if articles == nil {
		articles = []*artcrawl.Article{}
	}
	return articles, nil
}

// Marshal encodes articles as an indented JSON array without escaping
// HTML characters. A nil slice encodes as an empty array.
func Marshal(articles []*artcrawl.Article) ([]byte, error) {
	if articles == nil {
		articles = []*artcrawl.Article{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(articles); err != nil {
		return nil, fmt.Errorf("encode articles: %w", err)
	}
	return buf.Bytes(), nil
}

// Verify reads the document back from store and checks that it holds
// exactly want, in order. It returns the articles read.
func Verify(ctx context.Context, store artcrawl.ArticleStore, want []*artcrawl.Article) ([]*artcrawl.Article, error) {
	got, err := store.ReadArticles(ctx)
	if err != nil {
		return nil, err
	}

	if len(got) != len(want) {
		return got, artcrawl.Errorf(artcrawl.EINTERNAL, "read back %d articles, wrote %d", len(got), len(want))
	}
	for i := range want {
		if got[i] == nil || *got[i] != *want[i] {
			return got, artcrawl.Errorf(artcrawl.EINTERNAL, "article %d (%s) differs after read back", i, want[i].ID)
		}
	}
	return got, nil
}
