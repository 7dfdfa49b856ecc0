package stash

import (
	"net/url"
	"strings"
)

// DefaultTitle is used when a page offers no title at all.
const DefaultTitle = "Untitled"

// Metadata holds the descriptive fields resolved for a page.
// Empty fields were not found; Title and SiteName always have a value
// when the page URL is valid.
type Metadata struct {
	Title         string
	Excerpt       string
	Author        string
	SiteName      string
	PublishedTime string
	ImageURL      string
}

// SiteNameFromURL returns the URL's hostname without a leading "www.".
// Returns an empty string if the URL cannot be parsed.
func SiteNameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// FirstNonEmpty returns the first value that is not blank, trimmed.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
