package commands

import (
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

var ErrRequestParcelReleaseCommandIsNotConstructed = errors.New(
	"RequestParcelReleaseCommand must be created via NewRequestParcelReleaseCommand constructor",
)

// RequestParcelReleaseCommand represents a customer's request to have a
// package handed over or forwarded.
type RequestParcelReleaseCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRequestParcelReleaseCommand creates a release request command.
func NewRequestParcelReleaseCommand(parcelID kernel.UUID) (RequestParcelReleaseCommand, error) {
	command := RequestParcelReleaseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setParcelID(parcelID); err != nil {
		return RequestParcelReleaseCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestParcelReleaseCommand) Validate() error {
	return c.guard.Validate(ErrRequestParcelReleaseCommandIsNotConstructed)
}

// ParcelID returns the package the release is requested for.
func (c RequestParcelReleaseCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c *RequestParcelReleaseCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("parcelId is required", err)
	}

	c.parcelID = id
	return nil
}
