package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/stash"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// InnerText returns the text of the selection as a reader would see it:
// non-rendered elements are skipped, block elements start new lines and
// whitespace is normalized.
func InnerText(s *goquery.Selection) string {
	w := &textWriter{}
	for _, n := range s.Nodes {
		w.node(n)
	}
	return stash.NormalizeText(w.b.String())
}

// textWriter accumulates visible text. Line breaks requested by adjacent
// block boundaries are merged rather than added up.
type textWriter struct {
	b      strings.Builder
	breaks int
}

func (w *textWriter) text(s string) {
	if strings.TrimSpace(s) == "" {
		if s != "" && w.breaks == 0 && w.b.Len() > 0 {
			w.b.WriteByte(' ')
		}
		return
	}
	if w.breaks > 0 && w.b.Len() > 0 {
		w.b.WriteString(strings.Repeat("\n", w.breaks))
	}
	w.breaks = 0
	w.b.WriteString(s)
}

// newline writes a literal line break after any pending ones.
func (w *textWriter) newline() {
	if w.breaks > 0 && w.b.Len() > 0 {
		w.b.WriteString(strings.Repeat("\n", w.breaks))
	}
	w.breaks = 0
	w.b.WriteByte('\n')
}

func (w *textWriter) lineBreak(n int) {
	if n > w.breaks {
		w.breaks = n
	}
}

func (w *textWriter) node(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.text(n.Data)
		return
	case html.DocumentNode:
		w.children(n)
		return
	case html.ElementNode:
	default:
		return
	}

	if !isRendered(n) {
		return
	}

	switch {
	case n.DataAtom == atom.Br:
		w.newline()
	case isParagraph(n.DataAtom):
		w.lineBreak(2)
		w.children(n)
		w.lineBreak(2)
	case isBlock(n.DataAtom):
		w.lineBreak(1)
		w.children(n)
		w.lineBreak(1)
	case n.DataAtom == atom.Td || n.DataAtom == atom.Th:
		w.children(n)
		w.text("\t")
	default:
		w.children(n)
	}
}

func (w *textWriter) children(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.node(c)
	}
}

// isRendered reports whether an element contributes visible text.
func isRendered(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Noscript, atom.Template, atom.Iframe,
		atom.Frame, atom.Object, atom.Embed, atom.Head, atom.Title, atom.Svg, atom.Canvas:
		return false
	}
	for _, a := range n.Attr {
		if a.Key == "hidden" {
			return false
		}
	}
	return true
}

func isParagraph(a atom.Atom) bool {
	switch a {
	case atom.P, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Blockquote, atom.Pre:
		return true
	}
	return false
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.Div, atom.Article, atom.Section, atom.Header, atom.Footer, atom.Main,
		atom.Nav, atom.Aside, atom.Ul, atom.Ol, atom.Li, atom.Dl, atom.Dt, atom.Dd,
		atom.Table, atom.Tr, atom.Figure, atom.Figcaption, atom.Form, atom.Hr,
		atom.Address, atom.Details, atom.Summary, atom.Body:
		return true
	}
	return false
}
