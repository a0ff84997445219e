package commands

import (
	"context"
)

// DeleteLockerCommandHandler removes lockers and decrements the owning
// site's capacity counter.
//
// The sequence is fetch (to learn the owning site), hard delete, then
// counter decrement: three independent round-trips with no enclosing
// transaction. A crash between deletion and decrement leaves the counter
// stale, the same accepted drift window the reconciliation pass repairs.
type DeleteLockerCommandHandler struct {
	store  RegistryStore
	ledger *CapacityLedger
}

// NewDeleteLockerCommandHandler creates a handler for locker removal.
func NewDeleteLockerCommandHandler(store RegistryStore, ledger *CapacityLedger) DeleteLockerCommandHandler {
	return DeleteLockerCommandHandler{
		store:  store,
		ledger: ledger,
	}
}

// Handle fetches the locker, deletes its row, then adjusts the counter.
func (h DeleteLockerCommandHandler) Handle(ctx context.Context, cmd DeleteLockerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	lockers := h.store.LockerRepository()

	l, err := lockers.Get(ctx, cmd.LockerID())
	if err != nil {
		return err
	}

	if err = lockers.Delete(ctx, cmd.LockerID()); err != nil {
		return err
	}

	// Row is gone; a failed decrement only leaves counter drift.
	_ = h.ledger.OnLockerDeleted(ctx, l.SiteID())

	return nil
}
