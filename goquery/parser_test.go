package goquery_test

import (
	"testing"

	"github.com/fwojciec/artcrawl"
	"github.com/fwojciec/artcrawl/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("returns hrefs in document order", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<nav><a href="https://example.com/news">News</a></nav>
<main>
	<a href="https://example.com/a">A</a>
	<a href="/relative/b">B</a>
</main>
<footer><a href="mailto:desk@example.com">Contact</a></footer>
</body>
</html>`

		links, err := goquery.NewParser().ExtractLinks(html)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/news",
			"https://example.com/a",
			"/relative/b",
			"mailto:desk@example.com",
		}, links)
	})

	t.Run("keeps duplicates", func(t *testing.T) {
		t.Parallel()

		html := `<a href="https://example.com/a">1</a><a href="https://example.com/a">2</a>`

		links, err := goquery.NewParser().ExtractLinks(html)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/a", "https://example.com/a"}, links)
	})

	t.Run("skips anchors without href", func(t *testing.T) {
		t.Parallel()

		html := `<a name="top">Top</a><a href="https://example.com/a">A</a>`

		links, err := goquery.NewParser().ExtractLinks(html)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/a"}, links)
	})

	t.Run("returns no links for page without anchors", func(t *testing.T) {
		t.Parallel()

		links, err := goquery.NewParser().ExtractLinks(`<html><body><p>nothing</p></body></html>`)

		require.NoError(t, err)
		assert.Empty(t, links)
	})
}

func TestParser_ExtractArticle(t *testing.T) {
	t.Parallel()

	t.Run("extracts title, blocks and description", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
	<title> Grève à Paris </title>
	<meta name="description" content="Résumé de la journée">
</head>
<body>
<header><p>Site header</p></header>
<article>
	<h1>Ignored level one heading</h1>
	<p>Premier paragraphe.</p>
	<h2>Sous-titre</h2>
	<div><p>Paragraphe imbriqué.</p></div>
	<h3>Troisième niveau</h3>
	<h4>Quatrième niveau</h4>
	<h5>Ignored</h5>
</article>
</body>
</html>`

		a, err := goquery.NewParser().ExtractArticle("https://example.com/a", html)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/a", a.ID)
		assert.Equal(t, "Grève à Paris\n\nPremier paragraphe.\nSous-titre\nParagraphe imbriqué.\nTroisième niveau\nQuatrième niveau", a.Article)
		assert.Equal(t, "Résumé de la journée", a.Description)
	})

	t.Run("uses first article container only", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>T</title></head><body>
<article><p>first</p></article>
<article><p>second</p></article>
</body></html>`

		a, err := goquery.NewParser().ExtractArticle("u", html)

		require.NoError(t, err)
		assert.Equal(t, "T\n\nfirst", a.Article)
	})

	t.Run("uses sentinels when elements are missing", func(t *testing.T) {
		t.Parallel()

		a, err := goquery.NewParser().ExtractArticle("u", `<html><body><p>loose text</p></body></html>`)

		require.NoError(t, err)
		assert.Equal(t, artcrawl.TitleNotFound+"\n\n"+artcrawl.ContentNotFound, a.Article)
		assert.Equal(t, artcrawl.DescriptionNotFound, a.Description)
	})

	t.Run("discards description nested in article", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>T</title></head><body>
<article>
	<meta name="description" content="nested description">
	<p>Body.</p>
</article>
</body></html>`

		a, err := goquery.NewParser().ExtractArticle("u", html)

		require.NoError(t, err)
		assert.Equal(t, artcrawl.DescriptionNotFound, a.Description)
		assert.Equal(t, "T\n\nBody.", a.Article)
	})

	t.Run("prefers head description over nested one", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>T</title><meta name="description" content="head"></head><body>
<article><meta name="description" content="nested"><p>Body.</p></article>
</body></html>`

		a, err := goquery.NewParser().ExtractArticle("u", html)

		require.NoError(t, err)
		assert.Equal(t, "head", a.Description)
	})

	t.Run("description tag without content uses sentinel", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>T</title><meta name="description"></head><body></body></html>`

		a, err := goquery.NewParser().ExtractArticle("u", html)

		require.NoError(t, err)
		assert.Equal(t, artcrawl.DescriptionNotFound, a.Description)
	})

	t.Run("blank description content uses sentinel", func(t *testing.T) {
		t.Parallel()

		for _, content := range []string{"", "   "} {
			html := `<html><head><title>T</title><meta name="description" content="` + content + `"></head><body></body></html>`

			a, err := goquery.NewParser().ExtractArticle("u", html)

			require.NoError(t, err)
			assert.Equal(t, artcrawl.DescriptionNotFound, a.Description)
			require.NoError(t, a.Validate())
		}
	})

	t.Run("blank title uses sentinel", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title> </title></head><body><article><p>Body</p></article></body></html>`

		a, err := goquery.NewParser().ExtractArticle("u", html)

		require.NoError(t, err)
		assert.Equal(t, artcrawl.TitleNotFound+"\n\nBody", a.Article)
	})

	t.Run("empty article container yields title only", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>T</title></head><body><article><div>no blocks</div></article></body></html>`

		a, err := goquery.NewParser().ExtractArticle("u", html)

		require.NoError(t, err)
		assert.Equal(t, "T\n\n", a.Article)
	})
}

// Compile-time verification that Parser implements artcrawl.Parser
var _ artcrawl.Parser = (*goquery.Parser)(nil)
