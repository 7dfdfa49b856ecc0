// Package goquery implements article extraction over parsed HTML documents
// using goquery for selection and golang.org/x/net/html for tree walking.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/stash"
)

// Document is a parsed HTML page together with the base URL used to resolve
// relative links.
type Document struct {
	doc  *goquery.Document
	page *url.URL
	base *url.URL
}

// NewDocument parses rawHTML fetched from pageURL.
// A <base href> element, when present, overrides pageURL as the base URL.
func NewDocument(rawHTML, pageURL string) (*Document, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, stash.Errorf(stash.EINVALID, "empty HTML input")
	}

	var page *url.URL
	if pageURL != "" {
		u, err := url.Parse(pageURL)
		if err != nil {
			return nil, stash.Errorf(stash.EINVALID, "invalid page URL: %v", err)
		}
		page = u
	}

	base := page

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, stash.Errorf(stash.EMALFORMED, "failed to parse HTML: %v", err)
	}

	if href, ok := doc.Find("base[href]").First().Attr("href"); ok {
		if ref, err := url.Parse(strings.TrimSpace(href)); err == nil {
			if base != nil {
				ref = base.ResolveReference(ref)
			}
			if ref.IsAbs() {
				base = ref
			}
		}
	}

	return &Document{doc: doc, page: page, base: base}, nil
}

// Find returns the elements matching selector in document order.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// Body returns the <body> element.
func (d *Document) Body() *goquery.Selection {
	return d.doc.Find("body").First()
}

// BaseURL returns the URL relative links resolve against, or an empty
// string when unknown.
func (d *Document) BaseURL() string {
	if d.base == nil {
		return ""
	}
	return d.base.String()
}

// Title returns the text of the <title> element.
func (d *Document) Title() string {
	return strings.TrimSpace(d.doc.Find("title").First().Text())
}

// Meta returns the content of the first <meta> element whose attr equals
// value, e.g. Meta("property", "og:title").
func (d *Document) Meta(attr, value string) string {
	var content string
	d.doc.Find("meta[" + attr + "]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if v, _ := s.Attr(attr); !strings.EqualFold(v, value) {
			return true
		}
		content = strings.TrimSpace(s.AttrOr("content", ""))
		return content == ""
	})
	return content
}

// Root returns the selection holding the whole document.
func (d *Document) Root() *goquery.Selection {
	return d.doc.Selection
}
