package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/stash"
)

// Ensure LoggingSaveService implements stash.SaveService.
var _ stash.SaveService = (*LoggingSaveService)(nil)

// LoggingSaveService wraps a SaveService and logs writes.
// Reads are delegated without logging.
type LoggingSaveService struct {
	next   stash.SaveService
	logger *slog.Logger
}

// NewLoggingSaveService creates a new LoggingSaveService.
func NewLoggingSaveService(next stash.SaveService, logger *slog.Logger) *LoggingSaveService {
	return &LoggingSaveService{next: next, logger: logger}
}

func (s *LoggingSaveService) CreateSave(ctx context.Context, save *stash.Save) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create save",
			"url", save.URL,
			"source", save.Source,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateSave(ctx, save)
}

func (s *LoggingSaveService) CreateSaves(ctx context.Context, saves []*stash.Save) (n int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("create saves",
			"count", len(saves),
			"inserted", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateSaves(ctx, saves)
}

func (s *LoggingSaveService) FindSaveByID(ctx context.Context, id string) (*stash.Save, error) {
	return s.next.FindSaveByID(ctx, id)
}

func (s *LoggingSaveService) FindSaves(ctx context.Context, filter stash.SaveFilter) ([]*stash.Save, error) {
	return s.next.FindSaves(ctx, filter)
}

func (s *LoggingSaveService) DeleteSave(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete save",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteSave(ctx, id)
}
