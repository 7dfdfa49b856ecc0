// Package trafilatura adapts go-trafilatura to stash.ArticleParser.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/fwojciec/stash"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Parser implements stash.ArticleParser at compile time.
var _ stash.ArticleParser = (*Parser)(nil)

// Parser wraps go-trafilatura to find the main article of a page.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse runs trafilatura with its fallback extractors enabled. It returns
// nil without an error when no content node was found.
func (p *Parser) Parse(rawHTML, pageURL string) (*stash.ParsedArticle, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, stash.Errorf(stash.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if pageURL != "" {
		u, err := url.Parse(pageURL)
		if err != nil {
			return nil, stash.Errorf(stash.EINVALID, "invalid page URL: %v", err)
		}
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}
	if result.ContentNode == nil {
		return nil, nil
	}

	content, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, err
	}

	return &stash.ParsedArticle{
		Title:       result.Metadata.Title,
		Byline:      result.Metadata.Author,
		Excerpt:     result.Metadata.Description,
		SiteName:    result.Metadata.Sitename,
		Content:     content,
		TextContent: result.ContentText,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
