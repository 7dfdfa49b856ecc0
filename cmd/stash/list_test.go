package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/stash"
	main "github.com/fwojciec/stash/cmd/stash"
	"github.com/fwojciec/stash/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists saves for the user", func(t *testing.T) {
		t.Parallel()

		saves := &mock.SaveService{
			FindSavesFn: func(_ context.Context, filter stash.SaveFilter) ([]*stash.Save, error) {
				assert.Equal(t, "u1", *filter.UserID)
				assert.Nil(t, filter.HasHighlight)
				assert.Equal(t, 50, filter.Limit)
				return []*stash.Save{
					{ID: "a1", Title: "First", SiteName: "example.com"},
					{ID: "b2", Title: "Book", SiteName: "Kindle", Highlight: "quote"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, UserID: "u1", Saves: saves}

		require.NoError(t, (&main.ListCmd{Limit: 50}).Run(deps))

		assert.Equal(t, "a1  page       example.com  First\nb2  highlight  Kindle  Book\n", stdout.String())
	})

	t.Run("filters highlights", func(t *testing.T) {
		t.Parallel()

		var got stash.SaveFilter
		saves := &mock.SaveService{
			FindSavesFn: func(_ context.Context, filter stash.SaveFilter) ([]*stash.Save, error) {
				got = filter
				return nil, nil
			},
		}

		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}, UserID: "u1", Saves: saves}
		require.NoError(t, (&main.ListCmd{Highlights: true}).Run(deps))

		require.NotNil(t, got.HasHighlight)
		assert.True(t, *got.HasHighlight)
	})

	t.Run("filters pages", func(t *testing.T) {
		t.Parallel()

		var got stash.SaveFilter
		saves := &mock.SaveService{
			FindSavesFn: func(_ context.Context, filter stash.SaveFilter) ([]*stash.Save, error) {
				got = filter
				return nil, nil
			},
		}

		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}, UserID: "u1", Saves: saves}
		require.NoError(t, (&main.ListCmd{Pages: true}).Run(deps))

		require.NotNil(t, got.HasHighlight)
		assert.False(t, *got.HasHighlight)
	})

	t.Run("rejects both filters", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}, UserID: "u1", Saves: &mock.SaveService{}}
		err := (&main.ListCmd{Pages: true, Highlights: true}).Run(deps)

		assert.Equal(t, stash.EINVALID, stash.ErrorCode(err))
	})

	t.Run("shows hint when empty", func(t *testing.T) {
		t.Parallel()

		saves := &mock.SaveService{
			FindSavesFn: func(context.Context, stash.SaveFilter) ([]*stash.Save, error) {
				return []*stash.Save{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, UserID: "u1", Saves: saves}
		require.NoError(t, (&main.ListCmd{}).Run(deps))

		assert.Contains(t, stdout.String(), "No saves found")
	})

	t.Run("returns storage error", func(t *testing.T) {
		t.Parallel()

		saves := &mock.SaveService{
			FindSavesFn: func(context.Context, stash.SaveFilter) ([]*stash.Save, error) {
				return nil, errors.New("database locked")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, UserID: "u1", Saves: saves}
		err := (&main.ListCmd{}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, "error: Internal error.\n", stderr.String())
	})
}
