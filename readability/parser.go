// Package readability adapts go-shiori/go-readability to stash.ArticleParser.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/stash"
	"github.com/go-shiori/go-readability"
)

// Ensure Parser implements stash.ArticleParser at compile time.
var _ stash.ArticleParser = (*Parser)(nil)

// Parser wraps go-readability to find the main article of a page.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse runs readability on rawHTML. It returns nil without an error when
// no article candidate was found.
func (p *Parser) Parse(rawHTML, pageURL string) (*stash.ParsedArticle, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, stash.Errorf(stash.EINVALID, "empty HTML input")
	}

	var u *url.URL
	if pageURL != "" {
		parsed, err := url.Parse(pageURL)
		if err != nil {
			return nil, stash.Errorf(stash.EINVALID, "invalid page URL: %v", err)
		}
		u = parsed
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), u)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(article.Content) == "" {
		return nil, nil
	}

	return &stash.ParsedArticle{
		Title:       article.Title,
		Byline:      article.Byline,
		Excerpt:     article.Excerpt,
		SiteName:    article.SiteName,
		Content:     article.Content,
		TextContent: article.TextContent,
	}, nil
}
