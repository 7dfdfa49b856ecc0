package save

import (
	"context"
	"fmt"

	"github.com/fwojciec/stash"
)

// Importer imports highlights in bulk, skipping those already stored.
type Importer struct {
	Saves stash.SaveService
}

// ImportResult summarizes an import.
type ImportResult struct {
	Total      int
	Imported   int
	Duplicates int
}

// Message describes the result for the user.
func (r *ImportResult) Message() string {
	switch {
	case r.Total == 0:
		return "No highlights to import"
	case r.Imported == 0 && r.Duplicates == r.Total:
		return fmt.Sprintf("All %d highlights already synced", r.Total)
	case r.Duplicates > 0:
		return fmt.Sprintf("Synced %d new highlights (%d duplicates skipped)", r.Imported, r.Duplicates)
	default:
		return fmt.Sprintf("Synced %d new highlights", r.Imported)
	}
}

// Import stores the highlights not already saved for userID, matching on
// exact highlight text and title. On a failed batch the result reports
// the saves committed before it.
func (i *Importer) Import(ctx context.Context, userID string, highlights []stash.Highlight) (*ImportResult, error) {
	if userID == "" {
		return nil, stash.Errorf(stash.EINVALID, "user_id required")
	}
	for n, h := range highlights {
		if h.Title == "" || h.Text == "" {
			return nil, stash.Errorf(stash.EINVALID, "highlight %d: title and highlight required", n+1)
		}
	}

	result := &ImportResult{Total: len(highlights)}
	if len(highlights) == 0 {
		return result, nil
	}

	hasHighlight := true
	existing, err := i.Saves.FindSaves(ctx, stash.SaveFilter{UserID: &userID, HasHighlight: &hasHighlight})
	if err != nil {
		return nil, err
	}

	deduped := stash.DedupeHighlights(stash.NewHighlightKeySet(existing), highlights)
	result.Duplicates = deduped.Duplicates
	if len(deduped.Accepted) == 0 {
		return result, nil
	}

	saves := make([]*stash.Save, len(deduped.Accepted))
	for n, h := range deduped.Accepted {
		saves[n] = &stash.Save{
			UserID:    userID,
			Title:     h.Title,
			Author:    h.Author,
			Highlight: h.Text,
			SiteName:  stash.KindleSiteName,
			Source:    stash.SourceKindle,
		}
	}

	result.Imported, err = i.Saves.CreateSaves(ctx, saves)
	return result, err
}
