package commands

import (
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

var ErrDisposeParcelCommandIsNotConstructed = errors.New(
	"DisposeParcelCommand must be created via NewDisposeParcelCommand constructor",
)

// DisposeParcelCommand represents the decision to destroy or discard a
// package.
type DisposeParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDisposeParcelCommand creates a disposal command.
func NewDisposeParcelCommand(parcelID kernel.UUID) (DisposeParcelCommand, error) {
	command := DisposeParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setParcelID(parcelID); err != nil {
		return DisposeParcelCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DisposeParcelCommand) Validate() error {
	return c.guard.Validate(ErrDisposeParcelCommandIsNotConstructed)
}

// ParcelID returns the package to dispose of.
func (c DisposeParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c *DisposeParcelCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("parcelId is required", err)
	}

	c.parcelID = id
	return nil
}
