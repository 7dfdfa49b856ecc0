package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/stash"
)

// ParagraphOptions configures ExtractParagraphs.
type ParagraphOptions struct {
	// Selectors are queried in order; matches of each selector are visited
	// in document order.
	Selectors []string

	// MinLength is the exclusive lower bound on fragment length in characters.
	MinLength int

	// Boilerplate drops matching fragments. Nil keeps every fragment.
	Boilerplate *stash.Boilerplate
}

// ExtractParagraphs collects the visible text of elements under root that
// match the option selectors. Fragments of MinLength characters or fewer
// and boilerplate fragments are dropped. An element nested inside another
// match of the same selector is skipped so its text is not repeated.
func ExtractParagraphs(root *goquery.Selection, opts ParagraphOptions) []string {
	var fragments []string
	for _, selector := range opts.Selectors {
		root.Find(selector).Each(func(_ int, s *goquery.Selection) {
			if s.ParentsUntilSelection(root).Filter(selector).Length() > 0 {
				return
			}

			text := InnerText(s)
			if utf8.RuneCountInString(text) <= opts.MinLength {
				return
			}
			if opts.Boilerplate.Match(text) {
				return
			}
			fragments = append(fragments, text)
		})
	}
	return fragments
}

// JoinParagraphs joins fragments with blank lines.
func JoinParagraphs(fragments []string) string {
	return strings.Join(fragments, "\n\n")
}
