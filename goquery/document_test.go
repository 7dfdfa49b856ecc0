package goquery_test

import (
	"testing"

	"github.com/fwojciec/stash"
	"github.com/fwojciec/stash/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewDocument("  \n ", "https://example.com")

		require.Error(t, err)
		assert.Equal(t, stash.EINVALID, stash.ErrorCode(err))
	})

	t.Run("rejects invalid page URL", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewDocument("<p>text</p>", "://bad")

		require.Error(t, err)
		assert.Equal(t, stash.EINVALID, stash.ErrorCode(err))
	})

	t.Run("uses the page URL as base URL", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocument("<p>text</p>", "https://example.com/a/b")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/a/b", doc.BaseURL())
	})

	t.Run("prefers a base element over the page URL", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><base href="/static/"></head><body><p>text</p></body></html>`
		doc, err := goquery.NewDocument(html, "https://example.com/a/b")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/static/", doc.BaseURL())
	})

	t.Run("has no base URL without a page URL", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocument("<p>text</p>", "")

		require.NoError(t, err)
		assert.Empty(t, doc.BaseURL())
	})
}

func TestDocument_Meta(t *testing.T) {
	t.Parallel()

	html := `<html><head>
<meta property="og:title" content="  OG Title ">
<meta name="description" content="">
<meta name="description" content="Second description">
</head><body></body></html>`

	doc, err := goquery.NewDocument(html, "https://example.com")
	require.NoError(t, err)

	assert.Equal(t, "OG Title", doc.Meta("property", "og:title"))
	assert.Equal(t, "Second description", doc.Meta("name", "description"))
	assert.Empty(t, doc.Meta("name", "author"))
}

func TestInnerText(t *testing.T) {
	t.Parallel()

	t.Run("skips non-rendered elements", func(t *testing.T) {
		t.Parallel()

		html := `<div id="x">Visible <script>var hidden = 1;</script><style>.a{}</style><span hidden>secret</span>text</div>`
		doc, err := goquery.NewDocument(html, "")
		require.NoError(t, err)

		assert.Equal(t, "Visible text", goquery.InnerText(doc.Find("#x")))
	})

	t.Run("breaks lines at block elements", func(t *testing.T) {
		t.Parallel()

		html := `<div id="x"><h1>Title</h1><p>One<br>Two</p><ul><li>a</li><li>b</li></ul></div>`
		doc, err := goquery.NewDocument(html, "")
		require.NoError(t, err)

		assert.Equal(t, "Title\n\nOne\nTwo\n\na\nb", goquery.InnerText(doc.Find("#x")))
	})

	t.Run("returns empty string for empty selection", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocument("<p>text</p>", "")
		require.NoError(t, err)

		assert.Empty(t, goquery.InnerText(doc.Find(".missing")))
	})
}
