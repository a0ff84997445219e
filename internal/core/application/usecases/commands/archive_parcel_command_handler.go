package commands

import (
	"context"
	"time"
)

// ArchiveParcelCommandHandler soft-deletes a package. The lifecycle status
// and proof reference survive unchanged; only the soft-delete timestamp is
// set. Archiving an already archived package refreshes the timestamp.
type ArchiveParcelCommandHandler struct {
	store ParcelStore
}

// NewArchiveParcelCommandHandler creates a handler for package archival.
func NewArchiveParcelCommandHandler(store ParcelStore) ArchiveParcelCommandHandler {
	return ArchiveParcelCommandHandler{
		store: store,
	}
}

// Handle fetches the package, stamps it archived, and persists the result.
func (h ArchiveParcelCommandHandler) Handle(ctx context.Context, cmd ArchiveParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	parcels := h.store.ParcelRepository()

	p, err := parcels.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	p.Archive(time.Now())

	return parcels.Update(ctx, p)
}
