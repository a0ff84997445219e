package queries

import (
	"errors"
	"time"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

var ErrGetArchivedParcelsQueryIsNotConstructed = errors.New(
	"GetArchivedParcelsQuery must be created via NewGetArchivedParcelsQuery constructor",
)

// GetArchivedParcelsQuery retrieves soft-deleted packages, optionally
// restricted to one registration. Archived packages keep their lifecycle
// state and proof; the archive view exists so they can be audited and
// restored.
type GetArchivedParcelsQuery struct { //nolint:recvcheck //using for validation
	registrationID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetArchivedParcelsQuery creates an archived package listing query.
func NewGetArchivedParcelsQuery(registrationID *kernel.UUID) (GetArchivedParcelsQuery, error) {
	query := GetArchivedParcelsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setRegistrationID(registrationID); err != nil {
		return GetArchivedParcelsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetArchivedParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetArchivedParcelsQueryIsNotConstructed)
}

// RegistrationID returns the registration filter, nil when listing all.
func (q GetArchivedParcelsQuery) RegistrationID() *kernel.UUID {
	return q.registrationID
}

func (q *GetArchivedParcelsQuery) setRegistrationID(registrationID *kernel.UUID) error {
	if registrationID != nil {
		if err := registrationID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("registrationId is invalid", err)
		}
	}

	q.registrationID = registrationID
	return nil
}

// GetArchivedParcelsQueryResponse is the archived package read model.
type GetArchivedParcelsQueryResponse struct {
	ID              kernel.UUID
	RegistrationID  kernel.UUID
	TrackingNumber  string
	Status          parcel.Status
	ReleaseProofURL *string
	ArchivedAt      time.Time
}
