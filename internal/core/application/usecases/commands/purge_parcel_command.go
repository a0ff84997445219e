package commands

import (
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

var ErrPurgeParcelCommandIsNotConstructed = errors.New(
	"PurgeParcelCommand must be created via NewPurgeParcelCommand constructor",
)

// PurgeParcelCommand represents the permanent, irreversible deletion of a
// package record.
type PurgeParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPurgeParcelCommand creates a purge command.
func NewPurgeParcelCommand(parcelID kernel.UUID) (PurgeParcelCommand, error) {
	command := PurgeParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setParcelID(parcelID); err != nil {
		return PurgeParcelCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeParcelCommand) Validate() error {
	return c.guard.Validate(ErrPurgeParcelCommandIsNotConstructed)
}

// ParcelID returns the package to delete permanently.
func (c PurgeParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c *PurgeParcelCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("parcelId is required", err)
	}

	c.parcelID = id
	return nil
}
