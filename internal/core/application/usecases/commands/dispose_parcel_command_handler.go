package commands

import (
	"context"
)

// DisposeParcelCommandHandler marks a package as destroyed or discarded.
// Disposal is an admin decision that overrides the lifecycle, so there is no
// prior-state check.
type DisposeParcelCommandHandler struct {
	store ParcelStore
}

// NewDisposeParcelCommandHandler creates a handler for package disposal.
func NewDisposeParcelCommandHandler(store ParcelStore) DisposeParcelCommandHandler {
	return DisposeParcelCommandHandler{
		store: store,
	}
}

// Handle fetches the package, marks it disposed, and persists the result.
func (h DisposeParcelCommandHandler) Handle(ctx context.Context, cmd DisposeParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	parcels := h.store.ParcelRepository()

	p, err := parcels.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	p.Dispose()

	return parcels.Update(ctx, p)
}
