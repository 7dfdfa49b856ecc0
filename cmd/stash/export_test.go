package main_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/stash"
	main "github.com/fwojciec/stash/cmd/stash"
	"github.com/fwojciec/stash/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes every save and replaces the directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "archive")
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "stale.md"), []byte("old"), 0644))

		saves := &mock.SaveService{
			FindSavesFn: func(_ context.Context, filter stash.SaveFilter) ([]*stash.Save, error) {
				assert.Equal(t, "u1", *filter.UserID)
				return []*stash.Save{
					{ID: "0123456789", UserID: "u1", Title: "Hello World", SiteName: "example.com", URL: "https://example.com/hello", Content: "Body.", CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, UserID: "u1", Saves: saves}

		require.NoError(t, (&main.ExportCmd{Dir: dir}).Run(deps))

		assert.Contains(t, stdout.String(), "Exported 1 saves")
		_, err := os.Stat(filepath.Join(dir, "stale.md"))
		assert.True(t, os.IsNotExist(err))
		data, err := os.ReadFile(filepath.Join(dir, "example-com", "hello-world-01234567.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "Body.")
		_, err = os.Stat(dir + ".tmp")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("leaves directory untouched on storage error", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "archive")
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.md"), []byte("keep"), 0644))

		saves := &mock.SaveService{
			FindSavesFn: func(context.Context, stash.SaveFilter) ([]*stash.Save, error) {
				return nil, errors.New("boom")
			},
		}

		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}, UserID: "u1", Saves: saves}

		require.Error(t, (&main.ExportCmd{Dir: dir}).Run(deps))
		_, err := os.Stat(filepath.Join(dir, "keep.md"))
		assert.NoError(t, err)
	})
}
