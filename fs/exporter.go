// Package fs exports saves as Markdown files with YAML frontmatter.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/fwojciec/stash"
	"gopkg.in/yaml.v3"
)

// maxSlugLength bounds file and directory names derived from titles.
const maxSlugLength = 80

// Ensure Exporter implements stash.SaveWriter at compile time.
var _ stash.SaveWriter = (*Exporter)(nil)

// Exporter writes each save to <dir>/<site>/<slug>.md.
type Exporter struct {
	baseDir string
}

// NewExporter creates a new Exporter that writes under dir.
func NewExporter(dir string) *Exporter {
	return &Exporter{baseDir: dir}
}

// WriteSave writes save to disk, replacing any file at the same path.
func (e *Exporter) WriteSave(ctx context.Context, save *stash.Save) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content, err := FormatSave(save)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(e.baseDir, SavePath(save))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(content), 0644)
}

// SavePath returns the path of save relative to the export directory.
// The save ID prefix keeps saves with the same title apart.
func SavePath(save *stash.Save) string {
	site := Slugify(save.SiteName)
	if site == "" {
		site = "unknown"
	}

	name := Slugify(save.Title)
	if name == "" {
		name = "untitled"
	}
	if id := save.ID; id != "" {
		if len(id) > 8 {
			id = id[:8]
		}
		name += "-" + id
	}
	return filepath.Join(site, name+".md")
}

// Slugify lowercases s and replaces each run of characters other than
// letters and digits with a single hyphen.
func Slugify(s string) string {
	var b strings.Builder
	hyphen := false
	n := 0
	for _, r := range strings.ToLower(s) {
		if n >= maxSlugLength {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if hyphen && b.Len() > 0 {
				b.WriteByte('-')
				n++
			}
			hyphen = false
			b.WriteRune(r)
			n++
			continue
		}
		hyphen = true
	}
	return b.String()
}

type frontmatter struct {
	Title     string `yaml:"title"`
	URL       string `yaml:"url,omitempty"`
	Author    string `yaml:"author,omitempty"`
	Site      string `yaml:"site,omitempty"`
	Published string `yaml:"published,omitempty"`
	Saved     string `yaml:"saved,omitempty"`
	Source    string `yaml:"source,omitempty"`
}

// FormatSave formats a save as Markdown with YAML frontmatter. Page saves
// carry their content; highlight saves the quoted highlight.
func FormatSave(save *stash.Save) (string, error) {
	fm := frontmatter{
		Title:     save.Title,
		URL:       save.URL,
		Author:    save.Author,
		Site:      save.SiteName,
		Published: save.PublishedAt,
		Source:    save.Source,
	}
	if !save.CreatedAt.IsZero() {
		fm.Saved = save.CreatedAt.UTC().Format(time.RFC3339)
	}

	header, err := yaml.Marshal(fm)
	if err != nil {
		return "", err
	}

	body := save.Content
	if save.IsHighlight() {
		body = stash.QuoteText(save.Highlight)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	return b.String(), nil
}
