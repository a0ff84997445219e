package commands

import (
	"context"

	"mailroom/internal/core/domain/model/parcel"
)

// ReceiveParcelCommandHandler records the arrival of a package.
type ReceiveParcelCommandHandler struct {
	store ParcelStore
}

// NewReceiveParcelCommandHandler creates a handler for package intake.
func NewReceiveParcelCommandHandler(store ParcelStore) ReceiveParcelCommandHandler {
	return ReceiveParcelCommandHandler{
		store: store,
	}
}

// Handle creates the package in the Arrived status and persists it.
func (h ReceiveParcelCommandHandler) Handle(ctx context.Context, cmd ReceiveParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, err := parcel.NewParcel(cmd.ParcelID(), cmd.RegistrationID(), cmd.TrackingNumber())
	if err != nil {
		return err
	}

	return h.store.ParcelRepository().Add(ctx, p)
}
