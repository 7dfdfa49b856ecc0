package save_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/stash"
	"github.com/fwojciec/stash/mock"
	"github.com/fwojciec/stash/save"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func existingHighlights(saves ...*stash.Save) func(context.Context, stash.SaveFilter) ([]*stash.Save, error) {
	return func(ctx context.Context, filter stash.SaveFilter) ([]*stash.Save, error) {
		return saves, nil
	}
}

func TestImporter_Import(t *testing.T) {
	t.Parallel()

	t.Run("skips highlights already stored", func(t *testing.T) {
		t.Parallel()

		var filter stash.SaveFilter
		var inserted []*stash.Save
		svc := &mock.SaveService{
			FindSavesFn: func(ctx context.Context, f stash.SaveFilter) ([]*stash.Save, error) {
				filter = f
				return []*stash.Save{
					{Title: "Atomic Habits", Highlight: "You do not rise to the level of your goals."},
				}, nil
			},
			CreateSavesFn: func(ctx context.Context, saves []*stash.Save) (int, error) {
				inserted = saves
				return len(saves), nil
			},
		}

		result, err := (&save.Importer{Saves: svc}).Import(context.Background(), "u1", []stash.Highlight{
			{Title: "Atomic Habits", Author: "James Clear", Text: "You do not rise to the level of your goals."},
			{Title: "Atomic Habits", Author: "James Clear", Text: "Focus on systems."},
		})

		require.NoError(t, err)
		assert.Equal(t, "u1", *filter.UserID)
		assert.True(t, *filter.HasHighlight)
		assert.Equal(t, 1, result.Imported)
		assert.Equal(t, 1, result.Duplicates)
		assert.Equal(t, "Synced 1 new highlights (1 duplicates skipped)", result.Message())
		require.Len(t, inserted, 1)
		assert.Equal(t, "Focus on systems.", inserted[0].Highlight)
		assert.Equal(t, "James Clear", inserted[0].Author)
		assert.Equal(t, stash.KindleSiteName, inserted[0].SiteName)
		assert.Equal(t, stash.SourceKindle, inserted[0].Source)
		assert.Equal(t, "u1", inserted[0].UserID)
	})

	t.Run("reports everything already synced", func(t *testing.T) {
		t.Parallel()

		svc := &mock.SaveService{
			FindSavesFn: existingHighlights(&stash.Save{Title: "T", Highlight: "H"}),
		}

		result, err := (&save.Importer{Saves: svc}).Import(context.Background(), "u1", []stash.Highlight{
			{Title: "T", Text: "H"},
			{Title: "T", Text: "H"},
		})

		require.NoError(t, err)
		assert.Zero(t, result.Imported)
		assert.Equal(t, "All 2 highlights already synced", result.Message())
	})

	t.Run("reports nothing to import", func(t *testing.T) {
		t.Parallel()

		result, err := (&save.Importer{Saves: &mock.SaveService{}}).Import(context.Background(), "u1", nil)

		require.NoError(t, err)
		assert.Equal(t, "No highlights to import", result.Message())
	})

	t.Run("omits duplicate note when none were skipped", func(t *testing.T) {
		t.Parallel()

		svc := &mock.SaveService{
			FindSavesFn: existingHighlights(),
			CreateSavesFn: func(ctx context.Context, saves []*stash.Save) (int, error) {
				return len(saves), nil
			},
		}

		result, err := (&save.Importer{Saves: svc}).Import(context.Background(), "u1", []stash.Highlight{
			{Title: "T", Text: "Focus on systems."},
			{Title: "T", Text: "Focus on systems. "},
		})

		require.NoError(t, err)
		assert.Equal(t, 2, result.Imported)
		assert.Equal(t, "Synced 2 new highlights", result.Message())
	})

	t.Run("rejects highlight without title", func(t *testing.T) {
		t.Parallel()

		_, err := (&save.Importer{Saves: &mock.SaveService{}}).Import(context.Background(), "u1", []stash.Highlight{
			{Text: "orphan"},
		})

		assert.Equal(t, stash.EINVALID, stash.ErrorCode(err))
	})

	t.Run("returns committed count on batch failure", func(t *testing.T) {
		t.Parallel()

		batchErr := &stash.BatchError{Committed: 1, Inserted: 50, Err: errors.New("disk full")}
		svc := &mock.SaveService{
			FindSavesFn: existingHighlights(),
			CreateSavesFn: func(ctx context.Context, saves []*stash.Save) (int, error) {
				return 50, batchErr
			},
		}
		highlights := make([]stash.Highlight, 60)
		for i := range highlights {
			highlights[i] = stash.Highlight{Title: "T", Text: string(rune('a' + i%26)) + string(rune('0'+i/26))}
		}

		result, err := (&save.Importer{Saves: svc}).Import(context.Background(), "u1", highlights)

		require.ErrorIs(t, err, batchErr)
		assert.Equal(t, 50, result.Imported)
	})
}
