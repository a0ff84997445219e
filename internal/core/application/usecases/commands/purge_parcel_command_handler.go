package commands

import (
	"context"

	"mailroom/internal/pkg/errs"
)

// PurgeParcelCommandHandler permanently deletes a package row. After a purge
// every operation on the identifier reports not found; there is no recovery.
//
// By default any package may be purged directly. When the lifecycle policy
// requires archival first, purging an active package reports a conflict,
// forcing the two-step archive-then-purge flow.
type PurgeParcelCommandHandler struct {
	store  ParcelStore
	policy LifecyclePolicy
}

// NewPurgeParcelCommandHandler creates a handler for permanent deletion.
func NewPurgeParcelCommandHandler(store ParcelStore, policy LifecyclePolicy) PurgeParcelCommandHandler {
	return PurgeParcelCommandHandler{
		store:  store,
		policy: policy,
	}
}

// Handle checks the archival precondition when the policy demands it, then
// deletes the row.
func (h PurgeParcelCommandHandler) Handle(ctx context.Context, cmd PurgeParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	parcels := h.store.ParcelRepository()

	p, err := parcels.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if h.policy.RequireArchiveBeforePurge && !p.IsArchived() {
		return errs.NewResourceConflictError("parcelId", cmd.ParcelID().String())
	}

	return parcels.HardDelete(ctx, cmd.ParcelID())
}
