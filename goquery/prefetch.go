package goquery

import "github.com/fwojciec/stash"

// Prefetch extracts a page the way client-side capture does inside a page
// the user is signed in to: paragraphs under common article containers,
// falling back to every paragraph on the page when fewer than
// cfg.ClientMinFragments were found. Readability and curated containers are
// not used.
func (e *Extractor) Prefetch(rawHTML, pageURL string) (*stash.Prefetched, error) {
	doc, err := NewDocument(rawHTML, pageURL)
	if err != nil {
		return nil, err
	}

	fragments := ExtractParagraphs(doc.Root(), ParagraphOptions{
		Selectors: []string{e.config.ClientSelector},
		MinLength: e.config.ClientMinFragment,
	})
	if len(fragments) < e.config.ClientMinFragments {
		fragments = ExtractParagraphs(doc.Root(), ParagraphOptions{
			Selectors: []string{"p"},
			MinLength: e.config.ParagraphMinFragment,
		})
	}

	content := stash.NormalizeText(JoinParagraphs(fragments))
	if content == "" {
		return nil, stash.Errorf(stash.ENOCONTENT, "Could not extract article content")
	}

	meta := ResolveMetadata(doc, MetadataOptions{
		Content:       content,
		ExcerptLength: e.config.ExcerptLength,
		HeadingTitle:  true,
	})
	return &stash.Prefetched{
		Title:    meta.Title,
		Content:  content,
		Excerpt:  meta.Excerpt,
		ImageURL: meta.ImageURL,
		SiteName: meta.SiteName,
		Author:   meta.Author,
	}, nil
}
