// Package htmltomarkdown converts article HTML to Markdown using
// JohannesKaufmann/html-to-markdown. It is an alternative to the
// goquery converter for readers who want headings and tables kept as
// Markdown syntax.
package htmltomarkdown

import (
	"net/url"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/stash"
)

// Ensure Converter implements stash.Converter at compile time.
var _ stash.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms an HTML fragment into Markdown. Relative links are
// resolved against baseURL when it is non-empty.
func (c *Converter) Convert(html, baseURL string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	var opts []converter.ConvertOptionFunc
	if baseURL != "" {
		if _, err := url.Parse(baseURL); err != nil {
			return "", stash.Errorf(stash.EINVALID, "invalid base URL: %v", err)
		}
		opts = append(opts, converter.WithDomain(baseURL))
	}

	md, err := c.conv.ConvertString(html, opts...)
	if err != nil {
		return "", stash.Errorf(stash.EMALFORMED, "failed to convert HTML: %v", err)
	}
	return stash.TidyText(md), nil
}
