// Package goquery implements artcrawl.Parser using goquery CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/artcrawl"
)

// Selectors used for article extraction.
const (
	anchorSelector      = "a[href]"
	titleSelector       = "title"
	containerSelector   = "article"
	blockSelector       = "p, h2, h3, h4"
	descriptionSelector = `meta[name="description"]`
)

var _ artcrawl.Parser = (*Parser)(nil)

// Parser extracts links and articles from raw HTML.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ExtractLinks returns the href attribute of every anchor in document order.
// Values are returned exactly as written: relative URLs are not resolved and
// duplicates are not removed.
func (p *Parser) ExtractLinks(html string) ([]string, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	var links []string
	doc.Find(anchorSelector).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		links = append(links, href)
	})
	return links, nil
}

// ExtractArticle builds an Article from the page title, the paragraphs and
// h2-h4 headings of the first <article> element, and the page-level meta
// description. Description meta tags nested inside the article container
// are discarded before the description lookup.
func (p *Parser) ExtractArticle(url, html string) (*artcrawl.Article, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	title := artcrawl.TitleNotFound
	if v := strings.TrimSpace(doc.Find(titleSelector).First().Text()); v != "" {
		title = v
	}

	content := artcrawl.ContentNotFound
	if container := doc.Find(containerSelector).First(); container.Length() > 0 {
		container.Find(descriptionSelector).Remove()

		var blocks []string
		container.Find(blockSelector).Each(func(_ int, sel *goquery.Selection) {
			blocks = append(blocks, strings.TrimSpace(sel.Text()))
		})
		content = strings.Join(blocks, "\n")
	}

	description := artcrawl.DescriptionNotFound
	if meta := doc.Find(descriptionSelector).First(); meta.Length() > 0 {
		// A blank content attribute counts as missing.
		if v, ok := meta.Attr("content"); ok && strings.TrimSpace(v) != "" {
			description = v
		}
	}

	return &artcrawl.Article{
		ID:          url,
		Article:     title + "\n\n" + content,
		Description: description,
	}, nil
}

func parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, artcrawl.Errorf(artcrawl.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}
