package commands

import (
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/locker"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

var ErrUpdateLockerCommandIsNotConstructed = errors.New(
	"UpdateLockerCommand must be created via NewUpdateLockerCommand constructor",
)

// UpdateLockerCommand represents an admin correction of a locker's code,
// availability flag, or occupancy status. Each field is optional; nil means
// leave unchanged.
//
// Site reassignment is deliberately absent: moving a locker would invalidate
// the incrementally-maintained capacity counters of both sites.
type UpdateLockerCommand struct { //nolint:recvcheck //using for validation
	lockerID    kernel.UUID
	code        *string
	isAvailable *bool
	occupancy   *locker.OccupancyStatus

	guard guard.ConstructorGuard
}

// NewUpdateLockerCommand creates a command carrying the fields to change.
// At least one field must be provided.
func NewUpdateLockerCommand(
	lockerID kernel.UUID,
	code *string,
	isAvailable *bool,
	occupancy *locker.OccupancyStatus,
) (UpdateLockerCommand, error) {
	command := UpdateLockerCommand{
		isAvailable: isAvailable,
		guard:       guard.NewConstructorGuard(),
	}

	if code == nil && isAvailable == nil && occupancy == nil {
		return UpdateLockerCommand{}, errs.NewValueIsRequiredError("at least one field to update is required")
	}

	if err := errors.Join(
		command.setLockerID(lockerID),
		command.setCode(code),
		command.setOccupancy(occupancy),
	); err != nil {
		return UpdateLockerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLockerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLockerCommandIsNotConstructed)
}

// LockerID returns the locker to update.
func (c UpdateLockerCommand) LockerID() kernel.UUID {
	return c.lockerID
}

// Code returns the new code, nil when unchanged.
func (c UpdateLockerCommand) Code() *string {
	return c.code
}

// IsAvailable returns the new availability, nil when unchanged.
func (c UpdateLockerCommand) IsAvailable() *bool {
	return c.isAvailable
}

// Occupancy returns the new occupancy status, nil when unchanged.
func (c UpdateLockerCommand) Occupancy() *locker.OccupancyStatus {
	return c.occupancy
}

func (c *UpdateLockerCommand) setLockerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("lockerId is required", err)
	}

	c.lockerID = id
	return nil
}

func (c *UpdateLockerCommand) setCode(code *string) error {
	if code != nil && *code == "" {
		return errs.NewValueIsRequiredError("code is required")
	}

	c.code = code
	return nil
}

func (c *UpdateLockerCommand) setOccupancy(occupancy *locker.OccupancyStatus) error {
	if occupancy != nil {
		if err := occupancy.Validate(); err != nil {
			return err
		}
	}

	c.occupancy = occupancy
	return nil
}
