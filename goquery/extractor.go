package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/stash"
)

// Ensure Extractor implements stash.Extractor and stash.Prefetcher at compile time.
var (
	_ stash.Extractor  = (*Extractor)(nil)
	_ stash.Prefetcher = (*Extractor)(nil)
)

// Extractor extracts articles by trying strategies from most to least
// precise until one meets its acceptance threshold:
//
//  1. readability-style parse of the whole page
//  2. curated article-container selectors
//  3. generic paragraphs under main, article or body
//  4. the visible body text, truncated
//
// Extractor holds no mutable state and is safe for concurrent use.
type Extractor struct {
	parser      stash.ArticleParser
	converter   stash.Converter
	config      stash.ExtractConfig
	boilerplate *stash.Boilerplate
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithParser sets the readability-style parser. Without one the first
// strategy is skipped.
func WithParser(p stash.ArticleParser) Option {
	return func(e *Extractor) {
		e.parser = p
	}
}

// WithConverter sets the converter used on readability content.
// Defaults to Converter.
func WithConverter(c stash.Converter) Option {
	return func(e *Extractor) {
		e.converter = c
	}
}

// WithConfig replaces the default extraction configuration.
func WithConfig(cfg stash.ExtractConfig) Option {
	return func(e *Extractor) {
		e.config = cfg
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		converter: NewConverter(),
		config:    stash.DefaultExtractConfig(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.boilerplate = stash.NewBoilerplate(e.config.BoilerplatePatterns)
	return e
}

// attempt carries one page through the strategies.
type attempt struct {
	html    string
	pageURL string
	doc     *Document
	parsed  *stash.ParsedArticle
}

// strategy returns the extracted content and whether it met its threshold.
type strategy struct {
	tier stash.Tier
	run  func(a *attempt) (string, bool)
}

func (e *Extractor) strategies() []strategy {
	return []strategy{
		{stash.TierReadability, e.readability},
		{stash.TierSelector, func(a *attempt) (string, bool) {
			return SelectorContent(a.doc, e.config)
		}},
		{stash.TierParagraph, func(a *attempt) (string, bool) {
			return ParagraphContent(a.doc, e.config, e.boilerplate)
		}},
		{stash.TierBody, func(a *attempt) (string, bool) {
			return BodyContent(a.doc, e.config)
		}},
	}
}

// Extract processes raw HTML fetched from pageURL.
func (e *Extractor) Extract(rawHTML, pageURL string) (*stash.Article, error) {
	doc, err := NewDocument(rawHTML, pageURL)
	if err != nil {
		return nil, err
	}

	a := &attempt{html: rawHTML, pageURL: pageURL, doc: doc}
	for _, s := range e.strategies() {
		content, ok := s.run(a)
		if !ok {
			continue
		}

		meta := ResolveMetadata(doc, MetadataOptions{
			Parsed:        a.parsed,
			Content:       content,
			ExcerptLength: e.config.ExcerptLength,
		})
		return &stash.Article{
			Title:         meta.Title,
			Content:       content,
			Excerpt:       meta.Excerpt,
			SiteName:      meta.SiteName,
			Author:        meta.Author,
			PublishedTime: meta.PublishedTime,
			ImageURL:      meta.ImageURL,
			Tier:          s.tier,
		}, nil
	}

	return nil, stash.Errorf(stash.ENOCONTENT, "Could not extract article content")
}

// readability runs the parser on its own copy of the page and converts the
// candidate's HTML content when its text clears the threshold.
func (e *Extractor) readability(a *attempt) (string, bool) {
	if e.parser == nil {
		return "", false
	}

	parsed, err := e.parser.Parse(a.html, a.pageURL)
	if err != nil || parsed == nil {
		return "", false
	}
	if utf8.RuneCountInString(strings.TrimSpace(parsed.TextContent)) <= e.config.ReadabilityMinText {
		return "", false
	}

	content, err := e.converter.Convert(parsed.Content, a.doc.BaseURL())
	if err != nil {
		return "", false
	}
	content = stash.TidyText(content)
	if content == "" {
		return "", false
	}

	a.parsed = parsed
	return content, true
}

// SelectorContent tries each curated article selector in order and returns
// the block text of the first matching container longer than
// cfg.SelectorMinText characters. Boilerplate is not filtered.
func SelectorContent(d *Document, cfg stash.ExtractConfig) (string, bool) {
	for _, selector := range cfg.ArticleSelectors {
		container := d.Find(selector).First()
		if container.Length() == 0 {
			continue
		}

		fragments := ExtractParagraphs(container, ParagraphOptions{
			Selectors: []string{cfg.ArticleBlockSelector},
			MinLength: cfg.SelectorMinFragment,
		})
		text := stash.CleanContent(JoinParagraphs(fragments), cfg.UILabels)
		if utf8.RuneCountInString(text) > cfg.SelectorMinText {
			return text, true
		}
	}
	return "", false
}

// ParagraphContent collects every paragraph under <main>, <article> or
// <body> (first present) longer than cfg.ParagraphMinFragment characters,
// dropping boilerplate. It succeeds when at least one paragraph survives.
func ParagraphContent(d *Document, cfg stash.ExtractConfig, b *stash.Boilerplate) (string, bool) {
	root := d.Find("main").First()
	if root.Length() == 0 {
		root = d.Find("article").First()
	}
	if root.Length() == 0 {
		root = d.Body()
	}

	fragments := ExtractParagraphs(root, ParagraphOptions{
		Selectors:   []string{"p"},
		MinLength:   cfg.ParagraphMinFragment,
		Boilerplate: b,
	})
	if len(fragments) == 0 {
		return "", false
	}

	text := stash.CleanContent(JoinParagraphs(fragments), cfg.UILabels)
	return text, text != ""
}

// BodyContent returns the visible body text truncated to cfg.BodyMaxChars
// characters. It fails only when the body has no text at all.
func BodyContent(d *Document, cfg stash.ExtractConfig) (string, bool) {
	text := stash.Truncate(InnerText(d.Body()), cfg.BodyMaxChars)
	text = stash.CleanContent(text, cfg.UILabels)
	return text, text != ""
}
