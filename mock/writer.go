package mock

import (
	"context"

	"github.com/fwojciec/stash"
)

var _ stash.SaveWriter = (*SaveWriter)(nil)

// SaveWriter is a mock implementation of stash.SaveWriter.
type SaveWriter struct {
	WriteSaveFn func(ctx context.Context, save *stash.Save) error
}

func (w *SaveWriter) WriteSave(ctx context.Context, save *stash.Save) error {
	return w.WriteSaveFn(ctx, save)
}
