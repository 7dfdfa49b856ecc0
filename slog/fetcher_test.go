package slog_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/fwojciec/stash"
	"github.com/fwojciec/stash/mock"
	stashslog "github.com/fwojciec/stash/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs site and size of fetched page", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		html, err := stashslog.NewLoggingFetcher(inner, logger).Fetch(context.Background(), "https://www.example.com/posts/1")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		output := buf.String()
		assert.Contains(t, output, "level=INFO msg=fetch")
		assert.Contains(t, output, "site=example.com")
		assert.Contains(t, output, "url=https://www.example.com/posts/1")
		assert.Contains(t, output, "bytes=20")
		assert.NotContains(t, output, "code=")
	})

	t.Run("logs missing page with its error code", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", stash.Errorf(stash.ENOTFOUND, "page not found (404)")
			},
		}

		_, err := stashslog.NewLoggingFetcher(inner, logger).Fetch(context.Background(), "https://example.com/gone")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, `level=WARN msg="fetch failed"`)
		assert.Contains(t, output, "code=not_found")
		assert.NotContains(t, output, "bytes=")
	})

	t.Run("logs infrastructure failure as internal", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", fmt.Errorf("dial: %w", errors.New("connection refused"))
			},
		}

		_, err := stashslog.NewLoggingFetcher(inner, logger).Fetch(context.Background(), "https://example.com/a")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "code=internal")
		assert.Contains(t, output, `err="dial: connection refused"`)
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	closeCalled := false
	inner := &mock.Fetcher{
		CloseFn: func() error {
			closeCalled = true
			return nil
		},
	}

	err := stashslog.NewLoggingFetcher(inner, slog.New(slog.DiscardHandler)).Close()

	require.NoError(t, err)
	assert.True(t, closeCalled)
}
