package artcrawl

import (
	"context"
	"unicode/utf8"
)

// Sentinel values used when a page lacks the corresponding element.
// They keep every field of an Article a non-empty string.
const (
	TitleNotFound       = "title not found"
	ContentNotFound     = "article content not found"
	DescriptionNotFound = "no description found"
)

// Article is the unit of output: one fetched page reduced to its body text
// and its meta description. Field order matches the output document.
type Article struct {
	// ID is the source URL of the page.
	ID string `json:"id"`

	// Article is the page title followed by the text of the paragraphs and
	// headings found inside the primary content container.
	Article string `json:"article"`

	// Description is the page-level meta description.
	Description string `json:"description"`
}

// Acceptable reports whether the article counts toward the quota.
// The article text must be longer than the description, measured in characters.
func (a *Article) Acceptable() bool {
	return Acceptable(a.Article, a.Description)
}

// Validate returns an error if the article cannot be written.
func (a *Article) Validate() error {
	if a.ID == "" {
		return Errorf(EINVALID, "article id required")
	}
	if a.Article == "" {
		return Errorf(EINVALID, "article text required for %s", a.ID)
	}
	if a.Description == "" {
		return Errorf(EINVALID, "article description required for %s", a.ID)
	}
	return nil
}

// Acceptable is the admission rule: len(article) > len(description) in runes.
func Acceptable(article, description string) bool {
	return utf8.RuneCountInString(article) > utf8.RuneCountInString(description)
}

// Failure records a link that did not yield an acceptable article and the
// most recent reason why.
type Failure struct {
	URL string
	Err error
}

// ArticleStore persists the final article set as a single document.
type ArticleStore interface {
	// WriteArticles replaces the stored document with articles.
	// Readers never observe a partially written document.
	WriteArticles(ctx context.Context, articles []*Article) error

	// ReadArticles returns the stored articles in their stored order.
	// Returns ENOTFOUND if nothing has been written.
	ReadArticles(ctx context.Context) ([]*Article, error)
}
