package mock

import "github.com/fwojciec/artcrawl"

var _ artcrawl.Parser = (*Parser)(nil)

// Parser is a mock implementation of artcrawl.Parser.
type Parser struct {
	ExtractLinksFn   func(html string) ([]string, error)
	ExtractArticleFn func(url, html string) (*artcrawl.Article, error)
}

func (p *Parser) ExtractLinks(html string) ([]string, error) {
	return p.ExtractLinksFn(html)
}

func (p *Parser) ExtractArticle(url, html string) (*artcrawl.Article, error) {
	return p.ExtractArticleFn(url, html)
}
