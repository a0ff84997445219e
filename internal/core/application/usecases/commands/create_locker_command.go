package commands

import (
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

var ErrCreateLockerCommandIsNotConstructed = errors.New(
	"CreateLockerCommand must be created via NewCreateLockerCommand constructor",
)

// CreateLockerCommand represents an admin request to provision a locker at a
// site.
type CreateLockerCommand struct { //nolint:recvcheck //using for validation
	lockerID    kernel.UUID
	siteID      kernel.UUID
	code        string
	isAvailable bool

	guard guard.ConstructorGuard
}

// NewCreateLockerCommand creates a command to provision a locker, minting
// its ID. isAvailable lets admins register a compartment that is already
// physically occupied.
func NewCreateLockerCommand(siteID kernel.UUID, code string, isAvailable bool) (CreateLockerCommand, error) {
	command := CreateLockerCommand{
		isAvailable: isAvailable,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLockerID(kernel.NewUUID()),
		command.setSiteID(siteID),
		command.setCode(code),
	); err != nil {
		return CreateLockerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLockerCommand) Validate() error {
	return c.guard.Validate(ErrCreateLockerCommandIsNotConstructed)
}

// LockerID returns the minted locker ID.
func (c CreateLockerCommand) LockerID() kernel.UUID {
	return c.lockerID
}

// SiteID returns the owning site from the command.
func (c CreateLockerCommand) SiteID() kernel.UUID {
	return c.siteID
}

// Code returns the locker code from the command.
func (c CreateLockerCommand) Code() string {
	return c.code
}

// IsAvailable returns the initial availability from the command.
func (c CreateLockerCommand) IsAvailable() bool {
	return c.isAvailable
}

func (c *CreateLockerCommand) setLockerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.lockerID = id
	return nil
}

func (c *CreateLockerCommand) setSiteID(siteID kernel.UUID) error {
	if err := siteID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("siteId is required", err)
	}

	c.siteID = siteID
	return nil
}

func (c *CreateLockerCommand) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code is required")
	}

	c.code = code
	return nil
}
