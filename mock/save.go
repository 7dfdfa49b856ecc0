package mock

import (
	"context"

	"github.com/fwojciec/stash"
)

var _ stash.SaveService = (*SaveService)(nil)

// SaveService is a mock implementation of stash.SaveService.
type SaveService struct {
	CreateSaveFn   func(ctx context.Context, save *stash.Save) error
	CreateSavesFn  func(ctx context.Context, saves []*stash.Save) (int, error)
	FindSaveByIDFn func(ctx context.Context, id string) (*stash.Save, error)
	FindSavesFn    func(ctx context.Context, filter stash.SaveFilter) ([]*stash.Save, error)
	DeleteSaveFn   func(ctx context.Context, id string) error
}

func (s *SaveService) CreateSave(ctx context.Context, save *stash.Save) error {
	return s.CreateSaveFn(ctx, save)
}

func (s *SaveService) CreateSaves(ctx context.Context, saves []*stash.Save) (int, error) {
	return s.CreateSavesFn(ctx, saves)
}

func (s *SaveService) FindSaveByID(ctx context.Context, id string) (*stash.Save, error) {
	return s.FindSaveByIDFn(ctx, id)
}

func (s *SaveService) FindSaves(ctx context.Context, filter stash.SaveFilter) ([]*stash.Save, error) {
	return s.FindSavesFn(ctx, filter)
}

func (s *SaveService) DeleteSave(ctx context.Context, id string) error {
	return s.DeleteSaveFn(ctx, id)
}
