package commands

import (
	"context"

	"mailroom/internal/pkg/errs"
)

// RequestParcelReleaseCommandHandler moves a package to Release Requested.
type RequestParcelReleaseCommandHandler struct {
	store ParcelStore
}

// NewRequestParcelReleaseCommandHandler creates a handler for release
// requests.
func NewRequestParcelReleaseCommandHandler(store ParcelStore) RequestParcelReleaseCommandHandler {
	return RequestParcelReleaseCommandHandler{
		store: store,
	}
}

// Handle fetches the package and applies the transition. A package whose
// lifecycle state does not permit the request reports a conflict, not bad
// input: the request was well-formed, the resource is in the wrong state.
func (h RequestParcelReleaseCommandHandler) Handle(ctx context.Context, cmd RequestParcelReleaseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	parcels := h.store.ParcelRepository()

	p, err := parcels.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = p.RequestRelease(); err != nil {
		return errs.NewResourceConflictErrorWithCause("parcelId", cmd.ParcelID().String(), err)
	}

	return parcels.Update(ctx, p)
}
