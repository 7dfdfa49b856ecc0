package mock

import "github.com/fwojciec/stash"

var _ stash.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of stash.Extractor.
type Extractor struct {
	ExtractFn func(html, pageURL string) (*stash.Article, error)
}

func (e *Extractor) Extract(html, pageURL string) (*stash.Article, error) {
	return e.ExtractFn(html, pageURL)
}

var _ stash.ArticleParser = (*ArticleParser)(nil)

// ArticleParser is a mock implementation of stash.ArticleParser.
type ArticleParser struct {
	ParseFn func(html, pageURL string) (*stash.ParsedArticle, error)
}

func (p *ArticleParser) Parse(html, pageURL string) (*stash.ParsedArticle, error) {
	return p.ParseFn(html, pageURL)
}

var _ stash.Prefetcher = (*Prefetcher)(nil)

// Prefetcher is a mock implementation of stash.Prefetcher.
type Prefetcher struct {
	PrefetchFn func(html, pageURL string) (*stash.Prefetched, error)
}

func (p *Prefetcher) Prefetch(html, pageURL string) (*stash.Prefetched, error) {
	return p.PrefetchFn(html, pageURL)
}
