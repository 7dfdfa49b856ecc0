package stash

import "strings"

// DefaultBoilerplatePatterns returns the built-in boilerplate substrings.
func DefaultBoilerplatePatterns() []string {
	return []string{
		"subscribe",
		"sign up for",
		"newsletter",
		"follow us",
		"share this",
		"related articles",
		"recommended",
		"advertisement",
		"sponsored",
		"cookie",
		"privacy policy",
		"terms of service",
		"all rights reserved",
		"featured video",
		"watch now",
		"read more",
		"see also",
	}
}

// Boilerplate classifies text fragments as site chrome.
// A Boilerplate is immutable and safe for concurrent use.
type Boilerplate struct {
	patterns []string
}

// NewBoilerplate returns a classifier for the given patterns. Patterns are
// matched case-insensitively; empty patterns are ignored.
func NewBoilerplate(patterns []string) *Boilerplate {
	b := &Boilerplate{patterns: make([]string, 0, len(patterns))}
	for _, p := range patterns {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			b.patterns = append(b.patterns, p)
		}
	}
	return b
}

// Match reports whether text contains any boilerplate pattern.
// A nil classifier matches nothing.
func (b *Boilerplate) Match(text string) bool {
	if b == nil {
		return false
	}
	lower := strings.ToLower(text)
	for _, p := range b.patterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

var defaultBoilerplate = NewBoilerplate(DefaultBoilerplatePatterns())

// IsBoilerplate reports whether text matches the default pattern set.
func IsBoilerplate(text string) bool {
	return defaultBoilerplate.Match(text)
}
