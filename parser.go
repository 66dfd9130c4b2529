package artcrawl

// LinkExtractor extracts link targets from HTML.
type LinkExtractor interface {
	// ExtractLinks returns the href of every anchor in document order.
	// Relative URLs are returned as written; duplicates are kept.
	ExtractLinks(html string) ([]string, error)
}

// ArticleExtractor reduces an HTML page to an Article.
type ArticleExtractor interface {
	// ExtractArticle builds the article for the page at url.
	// Missing elements are replaced by sentinels rather than reported as errors.
	ExtractArticle(url, html string) (*Article, error)
}

// Parser combines link and article extraction.
type Parser interface {
	LinkExtractor
	ArticleExtractor
}
