package queries

import (
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/locker"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

var ErrGetLockersQueryIsNotConstructed = errors.New(
	"GetLockersQuery must be created via NewGetLockersQuery constructor",
)

// GetLockersQuery retrieves lockers, optionally restricted to one site.
type GetLockersQuery struct { //nolint:recvcheck //using for validation
	siteID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLockersQuery creates a locker listing query. A nil siteID lists the
// lockers of every site.
func NewGetLockersQuery(siteID *kernel.UUID) (GetLockersQuery, error) {
	query := GetLockersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setSiteID(siteID); err != nil {
		return GetLockersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLockersQuery) Validate() error {
	return q.guard.Validate(ErrGetLockersQueryIsNotConstructed)
}

// SiteID returns the site filter, nil when listing all sites.
func (q GetLockersQuery) SiteID() *kernel.UUID {
	return q.siteID
}

func (q *GetLockersQuery) setSiteID(siteID *kernel.UUID) error {
	if siteID != nil {
		if err := siteID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("siteId is invalid", err)
		}
	}

	q.siteID = siteID
	return nil
}

// GetLockersQueryResponse is the locker read model.
type GetLockersQueryResponse struct {
	ID          kernel.UUID
	SiteID      kernel.UUID
	Code        string
	IsAvailable bool
	Occupancy   locker.OccupancyStatus
}
