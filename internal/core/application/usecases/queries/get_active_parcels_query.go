package queries

import (
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

var ErrGetActiveParcelsQueryIsNotConstructed = errors.New(
	"GetActiveParcelsQuery must be created via NewGetActiveParcelsQuery constructor",
)

// GetActiveParcelsQuery retrieves packages that are not archived, optionally
// restricted to one registration.
type GetActiveParcelsQuery struct { //nolint:recvcheck //using for validation
	registrationID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveParcelsQuery creates an active package listing query. A nil
// registrationID lists the active packages of every registration.
func NewGetActiveParcelsQuery(registrationID *kernel.UUID) (GetActiveParcelsQuery, error) {
	query := GetActiveParcelsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setRegistrationID(registrationID); err != nil {
		return GetActiveParcelsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveParcelsQueryIsNotConstructed)
}

// RegistrationID returns the registration filter, nil when listing all.
func (q GetActiveParcelsQuery) RegistrationID() *kernel.UUID {
	return q.registrationID
}

func (q *GetActiveParcelsQuery) setRegistrationID(registrationID *kernel.UUID) error {
	if registrationID != nil {
		if err := registrationID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("registrationId is invalid", err)
		}
	}

	q.registrationID = registrationID
	return nil
}

// GetActiveParcelsQueryResponse is the active package read model.
type GetActiveParcelsQueryResponse struct {
	ID              kernel.UUID
	RegistrationID  kernel.UUID
	TrackingNumber  string
	Status          parcel.Status
	ReleaseProofURL *string
}
