package commands

import (
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

var ErrCreateSiteCommandIsNotConstructed = errors.New(
	"CreateSiteCommand must be created via NewCreateSiteCommand constructor",
)

// CreateSiteCommand represents an admin request to open a new mailroom site.
// The site starts with zero lockers; its capacity counter only ever changes
// through the capacity ledger.
type CreateSiteCommand struct { //nolint:recvcheck //using for validation
	siteID  kernel.UUID
	name    string
	address string

	guard guard.ConstructorGuard
}

// NewCreateSiteCommand creates a command to open a site, minting its ID.
func NewCreateSiteCommand(name, address string) (CreateSiteCommand, error) {
	command := CreateSiteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSiteID(kernel.NewUUID()),
		command.setName(name),
		command.setAddress(address),
	); err != nil {
		return CreateSiteCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSiteCommand) Validate() error {
	return c.guard.Validate(ErrCreateSiteCommandIsNotConstructed)
}

// SiteID returns the minted site ID.
func (c CreateSiteCommand) SiteID() kernel.UUID {
	return c.siteID
}

// Name returns the site name from the command.
func (c CreateSiteCommand) Name() string {
	return c.name
}

// Address returns the site address from the command.
func (c CreateSiteCommand) Address() string {
	return c.address
}

func (c *CreateSiteCommand) setSiteID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.siteID = id
	return nil
}

func (c *CreateSiteCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name is required")
	}

	c.name = name
	return nil
}

func (c *CreateSiteCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address is required")
	}

	c.address = address
	return nil
}
