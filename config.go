package stash

// ExtractConfig holds the selector lists, pattern sets and thresholds used
// by the extraction pipeline. It is built once at startup and shared
// read-only between concurrent extractions.
type ExtractConfig struct {
	// BoilerplatePatterns are lowercase substrings marking site chrome.
	BoilerplatePatterns []string `yaml:"boilerplate_patterns"`

	// ArticleSelectors are tried in order by the curated selector tier.
	ArticleSelectors []string `yaml:"article_selectors"`

	// ArticleBlockSelector lifts block content out of a curated container.
	ArticleBlockSelector string `yaml:"article_block_selector"`

	// ClientSelector is the paragraph selector group used by client-side
	// extraction.
	ClientSelector string `yaml:"client_selector"`

	// UILabels are stripped when they appear alone on a line.
	UILabels []string `yaml:"ui_labels"`

	ReadabilityMinText   int `yaml:"readability_min_text"`
	SelectorMinText      int `yaml:"selector_min_text"`
	SelectorMinFragment  int `yaml:"selector_min_fragment"`
	ParagraphMinFragment int `yaml:"paragraph_min_fragment"`
	ClientMinFragment    int `yaml:"client_min_fragment"`
	ClientMinFragments   int `yaml:"client_min_fragments"`
	BodyMaxChars         int `yaml:"body_max_chars"`
	ExcerptLength        int `yaml:"excerpt_length"`
	MaxContentLength     int `yaml:"max_content_length"`
}

// DefaultExtractConfig returns the built-in configuration.
func DefaultExtractConfig() ExtractConfig {
	return ExtractConfig{
		BoilerplatePatterns: DefaultBoilerplatePatterns(),
		ArticleSelectors: []string{
			"article",
			`[role="article"]`,
			".article-body",
			".article-content",
			".post-content",
			".entry-content",
			".story-body",
			"main article",
			"main .content",
			".c-entry-content",
			".article__body",
		},
		ArticleBlockSelector: "p, h1, h2, h3, h4, h5, h6, li, blockquote",
		ClientSelector:       `article p, main p, .article-body p, .post-content p, .entry-content p, [role="article"] p`,
		UILabels:             []string{"Share", "Tweet", "Email", "Print", "Save"},
		ReadabilityMinText:   200,
		SelectorMinText:      500,
		SelectorMinFragment:  20,
		ParagraphMinFragment: 50,
		ClientMinFragment:    20,
		ClientMinFragments:   3,
		BodyMaxChars:         50000,
		ExcerptLength:        300,
		MaxContentLength:     100000,
	}
}
