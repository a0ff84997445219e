package commands

import (
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

var ErrReleaseParcelCommandIsNotConstructed = errors.New(
	"ReleaseParcelCommand must be created via NewReleaseParcelCommand constructor",
)

// ReleaseParcelCommand represents the handover of a package, with the proof
// reference already stored. Callers that still need to store the evidence use
// UploadReleaseProofCommand instead, which runs the full pipeline.
type ReleaseParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	proofURL string

	guard guard.ConstructorGuard
}

// NewReleaseParcelCommand creates a release command. The proof reference is
// mandatory; a release without evidence is rejected outright.
func NewReleaseParcelCommand(parcelID kernel.UUID, proofURL string) (ReleaseParcelCommand, error) {
	command := ReleaseParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(parcelID),
		command.setProofURL(proofURL),
	); err != nil {
		return ReleaseParcelCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseParcelCommand) Validate() error {
	return c.guard.Validate(ErrReleaseParcelCommandIsNotConstructed)
}

// ParcelID returns the package to release.
func (c ReleaseParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// ProofURL returns the durable reference to the stored release evidence.
func (c ReleaseParcelCommand) ProofURL() string {
	return c.proofURL
}

func (c *ReleaseParcelCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("parcelId is required", err)
	}

	c.parcelID = id
	return nil
}

func (c *ReleaseParcelCommand) setProofURL(proofURL string) error {
	if proofURL == "" {
		return errs.NewValueIsRequiredError("proofURL is required")
	}

	c.proofURL = proofURL
	return nil
}
