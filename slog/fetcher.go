// Package slog provides logging decorators for stash services using the
// standard structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/stash"
)

// Ensure LoggingFetcher implements stash.Fetcher.
var _ stash.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher and logs one record per page fetch.
// Failures are logged at warn level with the error code, which tells a
// missing page apart from a transient failure worth retrying.
type LoggingFetcher struct {
	next   stash.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next stash.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"site", stash.SiteNameFromURL(url),
			"url", url,
			"duration", time.Since(begin),
		}
		if err != nil {
			attrs = append(attrs,
				"code", stash.ErrorCode(err),
				"err", err,
			)
			f.logger.Warn("fetch failed", attrs...)
			return
		}
		attrs = append(attrs, "bytes", len(html))
		f.logger.Info("fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
