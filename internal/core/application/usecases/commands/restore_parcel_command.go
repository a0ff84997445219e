package commands

import (
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

var ErrRestoreParcelCommandIsNotConstructed = errors.New(
	"RestoreParcelCommand must be created via NewRestoreParcelCommand constructor",
)

// RestoreParcelCommand represents returning an archived package to active
// listings.
type RestoreParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRestoreParcelCommand creates a restoration command.
func NewRestoreParcelCommand(parcelID kernel.UUID) (RestoreParcelCommand, error) {
	command := RestoreParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setParcelID(parcelID); err != nil {
		return RestoreParcelCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RestoreParcelCommand) Validate() error {
	return c.guard.Validate(ErrRestoreParcelCommandIsNotConstructed)
}

// ParcelID returns the package to restore.
func (c RestoreParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c *RestoreParcelCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("parcelId is required", err)
	}

	c.parcelID = id
	return nil
}
