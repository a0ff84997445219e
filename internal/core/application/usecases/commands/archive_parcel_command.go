package commands

import (
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

var ErrArchiveParcelCommandIsNotConstructed = errors.New(
	"ArchiveParcelCommand must be created via NewArchiveParcelCommand constructor",
)

// ArchiveParcelCommand represents moving a package out of active listings
// while keeping its record recoverable.
type ArchiveParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewArchiveParcelCommand creates an archival command.
func NewArchiveParcelCommand(parcelID kernel.UUID) (ArchiveParcelCommand, error) {
	command := ArchiveParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setParcelID(parcelID); err != nil {
		return ArchiveParcelCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ArchiveParcelCommand) Validate() error {
	return c.guard.Validate(ErrArchiveParcelCommandIsNotConstructed)
}

// ParcelID returns the package to archive.
func (c ArchiveParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c *ArchiveParcelCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("parcelId is required", err)
	}

	c.parcelID = id
	return nil
}
