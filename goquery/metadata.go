package goquery

import (
	"strings"

	"github.com/fwojciec/stash"
)

// MetadataOptions supplies the extraction results that take precedence
// over the page's own meta tags.
type MetadataOptions struct {
	// Parsed is the accepted readability candidate, if any.
	Parsed *stash.ParsedArticle

	// Content is the extracted body, used for the fallback excerpt.
	Content string

	// ExcerptLength bounds the fallback excerpt. Zero uses the default.
	ExcerptLength int

	// HeadingTitle enables the first <h1> as a title source before the
	// "Untitled" default.
	HeadingTitle bool
}

// ResolveMetadata resolves each field from the first non-empty source in
// its priority chain. Missing fields are left empty; Title is never empty.
func ResolveMetadata(d *Document, opts MetadataOptions) stash.Metadata {
	parsed := opts.Parsed
	if parsed == nil {
		parsed = &stash.ParsedArticle{}
	}

	excerptLength := opts.ExcerptLength
	if excerptLength <= 0 {
		excerptLength = stash.DefaultExtractConfig().ExcerptLength
	}

	var heading string
	if opts.HeadingTitle {
		heading = InnerText(d.Find("h1").First())
	}

	return stash.Metadata{
		Title: stash.FirstNonEmpty(
			parsed.Title,
			d.Meta("property", "og:title"),
			d.Title(),
			heading,
			stash.DefaultTitle,
		),
		Excerpt: stash.FirstNonEmpty(
			parsed.Excerpt,
			d.Meta("name", "description"),
			d.Meta("property", "og:description"),
			stash.Summarize(opts.Content, excerptLength),
		),
		Author: stash.FirstNonEmpty(
			parsed.Byline,
			d.Meta("name", "author"),
			d.Meta("property", "article:author"),
			InnerText(d.Find(`[rel="author"]`).First()),
			InnerText(d.Find(".author, .byline, .author-name").First()),
		),
		SiteName: stash.FirstNonEmpty(
			d.Meta("property", "og:site_name"),
			d.Meta("name", "application-name"),
			d.siteName(),
		),
		PublishedTime: stash.FirstNonEmpty(
			d.Find("time[datetime]").First().AttrOr("datetime", ""),
			d.Meta("property", "article:published_time"),
		),
		ImageURL: stash.FirstNonEmpty(
			d.Meta("property", "og:image"),
			d.Meta("name", "twitter:image"),
		),
	}
}

func (d *Document) siteName() string {
	if d.page == nil {
		return ""
	}
	return strings.TrimPrefix(d.page.Hostname(), "www.")
}
