package commands

import (
	"context"
)

// RestoreParcelCommandHandler clears a package's soft-delete timestamp,
// returning it to active listings with its lifecycle status and proof
// reference exactly as they were when archived. Restoring a package that is
// not archived succeeds silently.
type RestoreParcelCommandHandler struct {
	store ParcelStore
}

// NewRestoreParcelCommandHandler creates a handler for package restoration.
func NewRestoreParcelCommandHandler(store ParcelStore) RestoreParcelCommandHandler {
	return RestoreParcelCommandHandler{
		store: store,
	}
}

// Handle fetches the package, clears the archive stamp, and persists the
// result.
func (h RestoreParcelCommandHandler) Handle(ctx context.Context, cmd RestoreParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	parcels := h.store.ParcelRepository()

	p, err := parcels.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	p.Restore()

	return parcels.Update(ctx, p)
}
