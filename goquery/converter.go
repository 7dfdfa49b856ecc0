package goquery

import (
	"net/url"
	"strings"

	"github.com/fwojciec/stash"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Converter implements stash.Converter at compile time.
var _ stash.Converter = (*Converter)(nil)

// Converter renders HTML fragments as markdown-flavored plain text.
// It keeps paragraphs, line breaks, lists, quotes, links, emphasis and
// code, and drops everything else down to its text.
type Converter struct{}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{}
}

// Convert renders fragment as text. Relative link targets are resolved
// against baseURL when it is set.
func (c *Converter) Convert(fragment, baseURL string) (string, error) {
	var base *url.URL
	if baseURL != "" {
		u, err := url.Parse(baseURL)
		if err != nil {
			return "", stash.Errorf(stash.EINVALID, "invalid base URL: %v", err)
		}
		base = u
	}

	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		return "", stash.Errorf(stash.EMALFORMED, "failed to parse HTML: %v", err)
	}

	r := &renderer{base: base}
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(r.node(n))
	}
	return stash.NormalizeText(b.String()), nil
}

// renderer holds the state of a single Convert call.
type renderer struct {
	base *url.URL
	pre  int
}

func (r *renderer) node(n *html.Node) string {
	switch n.Type {
	case html.TextNode:
		// Whitespace between tags is source formatting, not content.
		if r.pre == 0 && n.Data != "" && strings.TrimSpace(n.Data) == "" {
			return " "
		}
		return n.Data
	case html.ElementNode:
		return r.element(n)
	case html.DocumentNode:
		return r.children(n)
	}
	return ""
}

func (r *renderer) children(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(r.node(c))
	}
	return b.String()
}

func (r *renderer) element(n *html.Node) string {
	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Noscript, atom.Iframe, atom.Frame,
		atom.Object, atom.Embed, atom.Template:
		return ""
	case atom.P, atom.Div, atom.Article, atom.Section, atom.Header, atom.Footer,
		atom.Main, atom.Aside, atom.Nav,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return "\n\n" + r.children(n) + "\n\n"
	case atom.Br:
		return "\n"
	case atom.Li:
		return "\n• " + r.children(n)
	case atom.Ul, atom.Ol:
		return "\n" + r.children(n) + "\n"
	case atom.Blockquote:
		return r.quote(n)
	case atom.A:
		return r.link(n)
	case atom.Strong, atom.B:
		return "**" + r.children(n) + "**"
	case atom.Em, atom.I:
		return "*" + r.children(n) + "*"
	case atom.Code:
		if r.pre > 0 {
			return r.children(n)
		}
		return "`" + r.children(n) + "`"
	case atom.Pre:
		r.pre++
		defer func() { r.pre-- }()
		return "\n\n```\n" + r.children(n) + "\n```\n\n"
	}
	return r.children(n)
}

// quote prefixes each line of the element's text with "> ".
func (r *renderer) quote(n *html.Node) string {
	text := stash.NormalizeText(r.children(n))
	if text == "" {
		return ""
	}
	return "\n\n" + stash.QuoteText(text) + "\n\n"
}

// pseudoSchemes are link targets that run or embed content instead of
// pointing at a page.
var pseudoSchemes = []string{"javascript:", "vbscript:", "data:"}

// link renders an anchor as [text](url). Anchors without text, without a
// target, or pointing at a fragment or pseudo scheme emit their text only.
func (r *renderer) link(n *html.Node) string {
	text := strings.TrimSpace(r.children(n))
	href := strings.TrimSpace(attr(n, "href"))
	if text == "" || href == "" || strings.HasPrefix(href, "#") || isPseudoURL(href) {
		return text
	}

	target, ok := r.resolve(href)
	if !ok {
		return text
	}
	return "[" + text + "](" + target + ")"
}

func (r *renderer) resolve(href string) (string, bool) {
	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	if r.base == nil {
		return href, true
	}
	return r.base.ResolveReference(ref).String(), true
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func isPseudoURL(href string) bool {
	lower := strings.ToLower(href)
	for _, scheme := range pseudoSchemes {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}
	return false
}
