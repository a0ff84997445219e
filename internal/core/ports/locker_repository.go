package ports

import (
	"context"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/locker"
)

// LockerRepository defines the persistence contract for lockers.
type LockerRepository interface {
	// Add persists a new locker.
	Add(ctx context.Context, l *locker.Locker) error

	// Update persists changes to an existing locker. The owning site never
	// changes through this operation.
	Update(ctx context.Context, l *locker.Locker) error

	// Get retrieves a locker by its identifier.
	// Returns errs.ObjectNotFoundError if the locker does not exist.
	Get(ctx context.Context, id kernel.UUID) (*locker.Locker, error)

	// GetAll retrieves lockers ordered by code, optionally filtered to one
	// site when siteID is non-nil.
	GetAll(ctx context.Context, siteID *kernel.UUID) ([]*locker.Locker, error)

	// Delete hard-deletes a locker row. The caller is responsible for
	// adjusting the owning site's locker counter afterwards.
	// Returns errs.ObjectNotFoundError if the locker does not exist.
	Delete(ctx context.Context, id kernel.UUID) error

	// CountBySite returns the live locker count for a site from a true
	// table scan. Used by the capacity reconciliation pass, never by the
	// ordinary read path.
	CountBySite(ctx context.Context, siteID kernel.UUID) (int, error)
}
