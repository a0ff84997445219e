package commands

import (
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

var ErrDeleteLockerCommandIsNotConstructed = errors.New(
	"DeleteLockerCommand must be created via NewDeleteLockerCommand constructor",
)

// DeleteLockerCommand represents an admin request to decommission a locker.
type DeleteLockerCommand struct { //nolint:recvcheck //using for validation
	lockerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteLockerCommand creates a command to remove a locker.
func NewDeleteLockerCommand(lockerID kernel.UUID) (DeleteLockerCommand, error) {
	command := DeleteLockerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setLockerID(lockerID); err != nil {
		return DeleteLockerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteLockerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteLockerCommandIsNotConstructed)
}

// LockerID returns the locker to remove.
func (c DeleteLockerCommand) LockerID() kernel.UUID {
	return c.lockerID
}

func (c *DeleteLockerCommand) setLockerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("lockerId is required", err)
	}

	c.lockerID = id
	return nil
}
