package stash_test

import (
	"testing"

	"github.com/fwojciec/stash"
	"github.com/stretchr/testify/assert"
)

func TestHighlightKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Focus on systems.|||Atomic Habits", stash.HighlightKey("Focus on systems.", "Atomic Habits"))
	assert.Equal(t, "Focus on systems.|||Atomic Habits", stash.Highlight{Title: "Atomic Habits", Text: "Focus on systems."}.Key())
}

func TestNewHighlightKeySet(t *testing.T) {
	t.Parallel()

	set := stash.NewHighlightKeySet([]*stash.Save{
		{Title: "Atomic Habits", Highlight: "Focus on systems."},
		{Title: "A page", Content: "not a highlight"},
	})

	assert.Len(t, set, 1)
	assert.True(t, set.Has(stash.HighlightKey("Focus on systems.", "Atomic Habits")))
}

func TestDedupeHighlights(t *testing.T) {
	t.Parallel()

	t.Run("skips stored highlights and keeps order", func(t *testing.T) {
		t.Parallel()

		existing := stash.NewHighlightKeySet([]*stash.Save{
			{Title: "Atomic Habits", Highlight: "You do not rise to the level of your goals."},
		})
		incoming := []stash.Highlight{
			{Title: "Atomic Habits", Text: "Habits are the compound interest of self-improvement."},
			{Title: "Atomic Habits", Text: "You do not rise to the level of your goals."},
			{Title: "Deep Work", Text: "Clarity about what matters provides clarity about what does not."},
		}

		res := stash.DedupeHighlights(existing, incoming)

		assert.Equal(t, 1, res.Duplicates)
		assert.Equal(t, []stash.Highlight{incoming[0], incoming[2]}, res.Accepted)
	})

	t.Run("same text under another title is new", func(t *testing.T) {
		t.Parallel()

		existing := stash.NewHighlightKeySet([]*stash.Save{{Title: "Book A", Highlight: "Same words."}})

		res := stash.DedupeHighlights(existing, []stash.Highlight{{Title: "Book B", Text: "Same words."}})

		assert.Zero(t, res.Duplicates)
		assert.Len(t, res.Accepted, 1)
	})

	t.Run("keys are exact", func(t *testing.T) {
		t.Parallel()

		existing := stash.NewHighlightKeySet([]*stash.Save{{Title: "Atomic Habits", Highlight: "Focus on systems."}})
		incoming := []stash.Highlight{
			{Title: "Atomic Habits", Text: "Focus on systems. "},
			{Title: "Atomic Habits", Text: "focus on systems."},
		}

		res := stash.DedupeHighlights(existing, incoming)

		assert.Zero(t, res.Duplicates)
		assert.Equal(t, incoming, res.Accepted)
	})

	t.Run("repeats within the batch are all accepted", func(t *testing.T) {
		t.Parallel()

		h := stash.Highlight{Title: "T", Text: "H"}

		res := stash.DedupeHighlights(stash.HighlightKeySet{}, []stash.Highlight{h, h})

		assert.Len(t, res.Accepted, 2)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		res := stash.DedupeHighlights(stash.HighlightKeySet{}, nil)

		assert.Empty(t, res.Accepted)
		assert.Zero(t, res.Duplicates)
	})
}
