package commands

import (
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

var ErrUploadReleaseProofCommandIsNotConstructed = errors.New(
	"UploadReleaseProofCommand must be created via NewUploadReleaseProofCommand constructor",
)

// UploadReleaseProofCommand represents a release backed by fresh evidence:
// the proof content is stored first and the package is released with the
// resulting reference.
type UploadReleaseProofCommand struct { //nolint:recvcheck //using for validation
	parcelID    kernel.UUID
	content     []byte
	contentType string

	guard guard.ConstructorGuard
}

// NewUploadReleaseProofCommand creates an evidence upload command. The proof
// content must be non-empty; the content type drives the stored file
// extension and may be anything the client declares.
func NewUploadReleaseProofCommand(parcelID kernel.UUID, content []byte, contentType string) (UploadReleaseProofCommand, error) {
	command := UploadReleaseProofCommand{
		contentType: contentType,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(parcelID),
		command.setContent(content),
	); err != nil {
		return UploadReleaseProofCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UploadReleaseProofCommand) Validate() error {
	return c.guard.Validate(ErrUploadReleaseProofCommandIsNotConstructed)
}

// ParcelID returns the package being released.
func (c UploadReleaseProofCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Content returns the raw proof evidence.
func (c UploadReleaseProofCommand) Content() []byte {
	return c.content
}

// ContentType returns the declared MIME type of the evidence.
func (c UploadReleaseProofCommand) ContentType() string {
	return c.contentType
}

func (c *UploadReleaseProofCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("parcelId is required", err)
	}

	c.parcelID = id
	return nil
}

func (c *UploadReleaseProofCommand) setContent(content []byte) error {
	if len(content) == 0 {
		return errs.NewValueIsRequiredError("content is required")
	}

	c.content = content
	return nil
}
