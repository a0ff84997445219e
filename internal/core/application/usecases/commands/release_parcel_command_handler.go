package commands

import (
	"context"

	"mailroom/internal/pkg/errs"
)

// ReleaseParcelCommandHandler moves a package to Released and records the
// proof reference.
//
// By default any package may be force-released regardless of its current
// state, which lets admins correct mishandled items. When the lifecycle
// policy enables the release precondition, only Arrived and Release Requested
// packages pass; anything else reports a conflict.
type ReleaseParcelCommandHandler struct {
	store  ParcelStore
	policy LifecyclePolicy
}

// NewReleaseParcelCommandHandler creates a handler for package release.
func NewReleaseParcelCommandHandler(store ParcelStore, policy LifecyclePolicy) ReleaseParcelCommandHandler {
	return ReleaseParcelCommandHandler{
		store:  store,
		policy: policy,
	}
}

// Handle fetches the package, applies the release, and persists the result.
func (h ReleaseParcelCommandHandler) Handle(ctx context.Context, cmd ReleaseParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	parcels := h.store.ParcelRepository()

	p, err := parcels.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = p.Release(cmd.ProofURL(), h.policy.EnforceReleasePrecondition); err != nil {
		return errs.NewResourceConflictErrorWithCause("parcelId", cmd.ParcelID().String(), err)
	}

	return parcels.Update(ctx, p)
}
