package goquery_test

import (
	"testing"

	"github.com/fwojciec/stash"
	"github.com/fwojciec/stash/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		html    string
		baseURL string
		want    string
	}{
		{
			name: "separates paragraphs with a blank line",
			html: "<p>A</p><p>B</p>",
			want: "A\n\nB",
		},
		{
			name: "renders links as markdown",
			html: `<a href="https://x.com">go</a>`,
			want: "[go](https://x.com)",
		},
		{
			name: "strips fragment links to their text",
			html: `<a href="#top">top</a>`,
			want: "top",
		},
		{
			name: "strips script links to their text",
			html: `<a href="javascript:void(0)">click</a>`,
			want: "click",
		},
		{
			name: "strips vbscript links to their text",
			html: `<a href="VBScript:msgbox(1)">run</a>`,
			want: "run",
		},
		{
			name: "strips data links to their text",
			html: `<a href="data:text/html;base64,PGI+">open</a>`,
			want: "open",
		},
		{
			name: "emits escaped markup as literal text",
			html: "<p>AT&amp;T and &lt;b&gt;</p>",
			want: "AT&T and <b>",
		},
		{
			name: "drops links without text",
			html: `<p>Before <a href="https://x.com"><img src="a.png"></a>after</p>`,
			want: "Before after",
		},
		{
			name:    "resolves relative links against the base URL",
			html:    `<a href="/docs/intro">Intro</a>`,
			baseURL: "https://example.com/blog/post",
			want:    "[Intro](https://example.com/docs/intro)",
		},
		{
			name: "keeps relative links without a base URL",
			html: `<a href="/docs/intro">Intro</a>`,
			want: "[Intro](/docs/intro)",
		},
		{
			name: "wraps emphasis and inline code",
			html: `<p>This is <strong>bold</strong>, <em>italic</em>, <b>b</b>, <i>i</i> and <code>x := 1</code>.</p>`,
			want: "This is **bold**, *italic*, **b**, *i* and `x := 1`.",
		},
		{
			name: "prefixes list items with bullets",
			html: "<ul><li>One</li><li>Two</li></ul>",
			want: "• One\n• Two",
		},
		{
			name: "ignores source formatting between list items",
			html: "<ul>\n  <li>One</li>\n  <li>Two</li>\n</ul>",
			want: "• One\n• Two",
		},
		{
			name: "renders ordered lists like unordered lists",
			html: "<p>Steps</p><ol><li>First</li><li>Second</li></ol>",
			want: "Steps\n\n• First\n• Second",
		},
		{
			name: "quotes every blockquote line",
			html: "<blockquote><p>First line</p><p>Second line</p></blockquote>",
			want: "> First line\n>\n> Second line",
		},
		{
			name: "fences preformatted blocks",
			html: `<p>Run:</p><pre><code>go test ./...</code></pre>`,
			want: "Run:\n\n```\ngo test ./...\n```",
		},
		{
			name: "skips scripts styles and frames",
			html: `<p>Keep</p><script>alert("x")</script><style>p{color:red}</style><noscript>Enable JS</noscript><iframe src="https://ads.example.com"></iframe><p>This</p>`,
			want: "Keep\n\nThis",
		},
		{
			name: "separates headings from text",
			html: "<h2>Title</h2>Text",
			want: "Title\n\nText",
		},
		{
			name: "renders line breaks as newlines",
			html: "<p>line one<br>line two</p>",
			want: "line one\nline two",
		},
		{
			name: "passes unknown elements through",
			html: "<span>a</span><span>b</span>",
			want: "ab",
		},
		{
			name: "collapses horizontal whitespace",
			html: "<p>  lots   of\t spaces  </p>",
			want: "lots of spaces",
		},
		{
			name: "collapses runs of blank lines",
			html: "<div><div><p>A</p></div></div><br><br><br><div><p>B</p></div>",
			want: "A\n\nB",
		},
		{
			name: "returns empty string for empty input",
			html: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := goquery.NewConverter()
			got, err := c.Convert(tt.html, tt.baseURL)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConverter_IdempotentOnPlainText(t *testing.T) {
	t.Parallel()

	c := goquery.NewConverter()
	input := "First paragraph of plain text.\n\nSecond paragraph, with *stars* and a [link](https://x.com)."

	once, err := c.Convert(input, "")
	require.NoError(t, err)
	twice, err := c.Convert(once, "")
	require.NoError(t, err)

	assert.Equal(t, input, once)
	assert.Equal(t, once, twice)
}

func TestConverter_RejectsInvalidBaseURL(t *testing.T) {
	t.Parallel()

	c := goquery.NewConverter()
	_, err := c.Convert("<p>A</p>", "://bad")

	require.Error(t, err)
	assert.Equal(t, stash.EINVALID, stash.ErrorCode(err))
}
