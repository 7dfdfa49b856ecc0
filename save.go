package stash

import (
	"context"
	"time"
)

// Save sources.
const (
	SourceAPI         = "api"
	SourceExtension   = "extension"
	SourceBookmarklet = "bookmarklet"
	SourceKindle      = "kindle"
	SourceCLI         = "cli"
)

// KindleSiteName is the site name recorded for imported Kindle highlights.
const KindleSiteName = "Kindle"

// Save represents a stored article or highlight.
type Save struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	Highlight   string    `json:"highlight"`
	ImageURL    string    `json:"imageUrl"`
	SiteName    string    `json:"siteName"`
	Author      string    `json:"author"`
	PublishedAt string    `json:"publishedAt"`
	Source      string    `json:"source"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the save contains invalid fields.
func (s *Save) Validate() error {
	if s.UserID == "" {
		return Errorf(EINVALID, "save user ID required")
	}
	if s.Title == "" {
		return Errorf(EINVALID, "save title required")
	}
	if s.URL == "" && s.Highlight == "" {
		return Errorf(EINVALID, "save URL or highlight required")
	}
	return nil
}

// IsHighlight reports whether the save stores a highlight rather than a page.
func (s *Save) IsHighlight() bool {
	return s.Highlight != ""
}

// SaveBatchSize is the number of records written per batch insert.
const SaveBatchSize = 50

// SaveService represents a service for managing saves.
type SaveService interface {
	// CreateSave creates a new save.
	CreateSave(ctx context.Context, save *Save) error

	// CreateSaves inserts saves sequentially in batches of SaveBatchSize.
	// Returns the number of saves inserted. A failing batch yields a
	// *BatchError; earlier batches stay committed.
	CreateSaves(ctx context.Context, saves []*Save) (int, error)

	// FindSaveByID retrieves a save by ID.
	// Returns ENOTFOUND if save does not exist.
	FindSaveByID(ctx context.Context, id string) (*Save, error)

	// FindSaves retrieves saves matching the filter, newest first.
	FindSaves(ctx context.Context, filter SaveFilter) ([]*Save, error)

	// DeleteSave permanently removes a save.
	// Returns ENOTFOUND if save does not exist.
	DeleteSave(ctx context.Context, id string) error
}

// SaveFilter represents a filter for FindSaves.
type SaveFilter struct {
	ID     *string `json:"id"`
	UserID *string `json:"userId"`
	URL    *string `json:"url"`
	Source *string `json:"source"`

	// HasHighlight restricts results to highlight saves (true) or page
	// saves (false).
	HasHighlight *bool `json:"hasHighlight"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SaveWriter writes saves to an archive outside the database.
type SaveWriter interface {
	WriteSave(ctx context.Context, save *Save) error
}
