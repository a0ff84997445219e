package commands

import (
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

var ErrReceiveParcelCommandIsNotConstructed = errors.New(
	"ReceiveParcelCommand must be created via NewReceiveParcelCommand constructor",
)

// ReceiveParcelCommand represents the intake of a package on behalf of a
// customer registration.
type ReceiveParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID       kernel.UUID
	registrationID kernel.UUID
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewReceiveParcelCommand creates an intake command, minting the ID of the
// package it will create.
func NewReceiveParcelCommand(registrationID kernel.UUID, trackingNumber string) (ReceiveParcelCommand, error) {
	command := ReceiveParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(kernel.NewUUID()),
		command.setRegistrationID(registrationID),
		command.setTrackingNumber(trackingNumber),
	); err != nil {
		return ReceiveParcelCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReceiveParcelCommand) Validate() error {
	return c.guard.Validate(ErrReceiveParcelCommandIsNotConstructed)
}

// ParcelID returns the minted ID of the package to create.
func (c ReceiveParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// RegistrationID returns the registration the package belongs to.
func (c ReceiveParcelCommand) RegistrationID() kernel.UUID {
	return c.registrationID
}

// TrackingNumber returns the carrier tracking number recorded at intake.
func (c ReceiveParcelCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c *ReceiveParcelCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.parcelID = id
	return nil
}

func (c *ReceiveParcelCommand) setRegistrationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("registrationId is required", err)
	}

	c.registrationID = id
	return nil
}

func (c *ReceiveParcelCommand) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber is required")
	}

	c.trackingNumber = trackingNumber
	return nil
}
