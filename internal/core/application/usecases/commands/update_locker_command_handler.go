package commands

import (
	"context"
)

// UpdateLockerCommandHandler applies admin corrections to a locker.
type UpdateLockerCommandHandler struct {
	store LockerStore
}

// NewUpdateLockerCommandHandler creates a handler for locker updates.
func NewUpdateLockerCommandHandler(store LockerStore) UpdateLockerCommandHandler {
	return UpdateLockerCommandHandler{
		store: store,
	}
}

// Handle fetches the locker, applies the requested changes, and persists
// the result. Single-row write, no compensation.
func (h UpdateLockerCommandHandler) Handle(ctx context.Context, cmd UpdateLockerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	lockers := h.store.LockerRepository()

	l, err := lockers.Get(ctx, cmd.LockerID())
	if err != nil {
		return err
	}

	if cmd.Code() != nil {
		if err = l.Rename(*cmd.Code()); err != nil {
			return err
		}
	}

	if cmd.IsAvailable() != nil {
		l.SetAvailability(*cmd.IsAvailable())
	}

	if cmd.Occupancy() != nil {
		if err = l.SetOccupancy(*cmd.Occupancy()); err != nil {
			return err
		}
	}

	return lockers.Update(ctx, l)
}
