package commands

import (
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

var ErrAssignLockerCommandIsNotConstructed = errors.New(
	"AssignLockerCommand must be created via NewAssignLockerCommand constructor",
)

// AssignLockerCommand represents the request to assign a locker to a
// customer registration.
type AssignLockerCommand struct { //nolint:recvcheck //using for validation
	allocationID   kernel.UUID
	registrationID kernel.UUID
	lockerID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignLockerCommand creates an assignment command, minting the ID of
// the allocation it will create. Both identifiers must be present.
func NewAssignLockerCommand(registrationID, lockerID kernel.UUID) (AssignLockerCommand, error) {
	command := AssignLockerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAllocationID(kernel.NewUUID()),
		command.setRegistrationID(registrationID),
		command.setLockerID(lockerID),
	); err != nil {
		return AssignLockerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignLockerCommand) Validate() error {
	return c.guard.Validate(ErrAssignLockerCommandIsNotConstructed)
}

// AllocationID returns the minted ID of the allocation to create.
func (c AssignLockerCommand) AllocationID() kernel.UUID {
	return c.allocationID
}

// RegistrationID returns the registration requesting the locker.
func (c AssignLockerCommand) RegistrationID() kernel.UUID {
	return c.registrationID
}

// LockerID returns the locker to assign.
func (c AssignLockerCommand) LockerID() kernel.UUID {
	return c.lockerID
}

func (c *AssignLockerCommand) setAllocationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.allocationID = id
	return nil
}

func (c *AssignLockerCommand) setRegistrationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("registrationId is required", err)
	}

	c.registrationID = id
	return nil
}

func (c *AssignLockerCommand) setLockerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("lockerId is required", err)
	}

	c.lockerID = id
	return nil
}
