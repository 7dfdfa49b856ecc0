package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/stash"
)

// Ensure LoggingExtractor implements stash.Extractor.
var _ stash.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor and logs which tier produced the
// article.
type LoggingExtractor struct {
	next   stash.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next stash.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor.
func (e *LoggingExtractor) Extract(html, pageURL string) (article *stash.Article, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", pageURL,
			"duration", time.Since(begin),
		}
		if article != nil {
			attrs = append(attrs,
				"tier", article.Tier.String(),
				"chars", len([]rune(article.Content)),
			)
		}
		attrs = append(attrs, "err", err)
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html, pageURL)
}
