package stash

// Tier identifies the extraction strategy that produced an article's content.
type Tier int

// Tiers in the order they are attempted.
const (
	TierNone Tier = iota
	TierReadability
	TierSelector
	TierParagraph
	TierBody
)

// String returns the tier's log label.
func (t Tier) String() string {
	switch t {
	case TierReadability:
		return "readability"
	case TierSelector:
		return "selector"
	case TierParagraph:
		return "paragraph"
	case TierBody:
		return "body"
	}
	return "none"
}

// Article is the result of extracting a single page.
//
// Empty optional fields mean "not present". Title is never empty, and when
// Content is set it is trimmed, free of markup and has no run of three or
// more newlines.
type Article struct {
	Title         string
	Content       string
	Excerpt       string
	SiteName      string
	Author        string
	PublishedTime string
	ImageURL      string

	// Tier records which strategy produced Content.
	Tier Tier
}

// Extractor turns a full HTML page into an Article.
type Extractor interface {
	// Extract processes raw HTML fetched from pageURL. Relative links in the
	// content are resolved against pageURL.
	// Returns EMALFORMED if the HTML cannot be parsed and ENOCONTENT if no
	// strategy produced any content.
	Extract(html, pageURL string) (*Article, error)
}

// ParsedArticle is the candidate returned by a readability-style parser.
type ParsedArticle struct {
	Title    string
	Byline   string
	Excerpt  string
	SiteName string

	// Content is the article body as cleaned HTML.
	Content string

	// TextContent is the article body as plain text.
	TextContent string
}

// ArticleParser is a heuristic article-body detector treated as a black box.
type ArticleParser interface {
	// Parse returns the best-guess article for the page, or nil when the
	// parser finds nothing. It must not modify shared state.
	Parse(html, pageURL string) (*ParsedArticle, error)
}

// Converter renders an HTML fragment as text.
type Converter interface {
	// Convert transforms an HTML fragment into plain text or markdown.
	// Relative link targets are resolved against baseURL when it is set.
	Convert(html, baseURL string) (string, error)
}

// Prefetched is article data extracted client-side, inside a page the user
// is already signed in to. It is stored as-is instead of fetching the page.
type Prefetched struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Excerpt  string `json:"excerpt"`
	ImageURL string `json:"image_url"`
	SiteName string `json:"site_name"`
	Author   string `json:"author"`
}

// Article converts the payload into an Article, filling the title and site
// name defaults.
func (p *Prefetched) Article(pageURL string) *Article {
	a := &Article{
		Title:    p.Title,
		Content:  p.Content,
		Excerpt:  p.Excerpt,
		ImageURL: p.ImageURL,
		SiteName: p.SiteName,
		Author:   p.Author,
		Tier:     TierParagraph,
	}
	if a.Title == "" {
		a.Title = DefaultTitle
	}
	if a.SiteName == "" {
		a.SiteName = SiteNameFromURL(pageURL)
	}
	return a
}

// Prefetcher performs client-side style extraction, producing the payload
// a browser extension would send with a save.
type Prefetcher interface {
	Prefetch(html, pageURL string) (*Prefetched, error)
}
