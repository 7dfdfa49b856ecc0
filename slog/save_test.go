package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/stash"
	"github.com/fwojciec/stash/mock"
	stashslog "github.com/fwojciec/stash/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSaveService(t *testing.T) {
	t.Parallel()

	t.Run("logs created save", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.SaveService{
			CreateSaveFn: func(ctx context.Context, save *stash.Save) error { return nil },
		}
		svc := stashslog.NewLoggingSaveService(inner, slog.New(slog.NewTextHandler(&buf, nil)))

		err := svc.CreateSave(context.Background(), &stash.Save{URL: "https://example.com/a", Source: stash.SourceCLI})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), `msg="create save"`)
		assert.Contains(t, buf.String(), "url=https://example.com/a")
		assert.Contains(t, buf.String(), "source=cli")
	})

	t.Run("logs batch counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.SaveService{
			CreateSavesFn: func(ctx context.Context, saves []*stash.Save) (int, error) {
				return 1, errors.New("disk full")
			},
		}
		svc := stashslog.NewLoggingSaveService(inner, slog.New(slog.NewTextHandler(&buf, nil)))

		n, err := svc.CreateSaves(context.Background(), []*stash.Save{{}, {}})

		require.Error(t, err)
		assert.Equal(t, 1, n)
		assert.Contains(t, buf.String(), "count=2")
		assert.Contains(t, buf.String(), "inserted=1")
		assert.Contains(t, buf.String(), `err="disk full"`)
	})

	t.Run("does not log reads", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.SaveService{
			FindSavesFn: func(ctx context.Context, filter stash.SaveFilter) ([]*stash.Save, error) {
				return []*stash.Save{{ID: "1"}}, nil
			},
		}
		svc := stashslog.NewLoggingSaveService(inner, slog.New(slog.NewTextHandler(&buf, nil)))

		saves, err := svc.FindSaves(context.Background(), stash.SaveFilter{})

		require.NoError(t, err)
		assert.Len(t, saves, 1)
		assert.Empty(t, buf.String())
	})

	t.Run("logs delete", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.SaveService{
			DeleteSaveFn: func(ctx context.Context, id string) error { return nil },
		}
		svc := stashslog.NewLoggingSaveService(inner, slog.New(slog.NewTextHandler(&buf, nil)))

		require.NoError(t, svc.DeleteSave(context.Background(), "abc"))
		assert.Contains(t, buf.String(), "id=abc")
	})
}
