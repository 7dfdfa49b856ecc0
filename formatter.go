package stash

import (
	"fmt"
	"strings"
)

// FormatSave formats a save for reading in a terminal.
// Page saves print their content; highlight saves print the quoted highlight.
func FormatSave(s *Save) string {
	var b strings.Builder
	b.WriteString("# " + s.Title + "\n")

	var meta []string
	if s.SiteName != "" {
		meta = append(meta, s.SiteName)
	}
	if s.Author != "" {
		meta = append(meta, "by "+s.Author)
	}
	if s.PublishedAt != "" {
		meta = append(meta, s.PublishedAt)
	}
	if len(meta) > 0 {
		b.WriteString(strings.Join(meta, " • ") + "\n")
	}
	if s.URL != "" {
		b.WriteString(s.URL + "\n")
	}

	body := s.Content
	if s.IsHighlight() {
		body = QuoteText(s.Highlight)
	}
	if body != "" {
		b.WriteString("\n" + body + "\n")
	}
	return b.String()
}

// FormatSaveLine formats a save as a single summary line.
func FormatSaveLine(s *Save) string {
	kind := "page"
	if s.IsHighlight() {
		kind = "highlight"
	}
	return fmt.Sprintf("%s  %-9s  %s  %s", s.ID, kind, s.SiteName, s.Title)
}

// QuoteText prefixes every line of text with "> ".
func QuoteText(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i, line := range lines {
		lines[i] = "> " + line
	}
	return strings.Join(lines, "\n")
}
