package stash

import "strings"

// NormalizeText collapses runs of horizontal whitespace to a single space,
// strips each line, reduces runs of blank lines to one and trims the result.
func NormalizeText(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = collapseSpace(line)
		if line == "" {
			if len(out) > 0 {
				blank = true
			}
			continue
		}
		if blank {
			out = append(out, "")
			blank = false
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// collapseSpace replaces runs of horizontal whitespace with one space and
// trims both ends.
func collapseSpace(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	pending := false
	for _, r := range line {
		if isHorizontalSpace(r) {
			pending = b.Len() > 0
			continue
		}
		if pending {
			b.WriteByte(' ')
			pending = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isHorizontalSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\f', '\v', '\u00a0':
		return true
	}
	return false
}

// CleanContent normalizes extracted body text and drops lines consisting
// only of one of the given UI labels (compared case-insensitively).
func CleanContent(text string, labels []string) string {
	text = NormalizeText(text)
	if text == "" || len(labels) == 0 {
		return text
	}

	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if isLabel(line, labels) {
			continue
		}
		kept = append(kept, line)
	}
	return NormalizeText(strings.Join(kept, "\n"))
}

func isLabel(line string, labels []string) bool {
	for _, l := range labels {
		if strings.EqualFold(line, l) {
			return true
		}
	}
	return false
}

// Truncate returns at most n runes of s.
func Truncate(s string, n int) string {
	if n < 0 {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// Summarize returns the first n runes of content followed by an ellipsis.
// Returns an empty string for empty content.
func Summarize(content string, n int) string {
	if content == "" {
		return ""
	}
	return Truncate(content, n) + "..."
}

// TidyText trims trailing whitespace from each line, reduces runs of blank
// lines to one and trims the result. Leading indentation is kept, so
// markdown structure survives.
func TidyText(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimRightFunc(line, isHorizontalSpace)
		if strings.TrimLeftFunc(line, isHorizontalSpace) == "" {
			if len(out) > 0 {
				blank = true
			}
			continue
		}
		if blank {
			out = append(out, "")
			blank = false
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
