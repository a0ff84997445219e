package ports

import (
	"context"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for packages, including
// the archived (soft-deleted) view.
type ParcelRepository interface {
	// Add persists a newly arrived package.
	Add(ctx context.Context, p *parcel.Parcel) error

	// Update persists changes to an existing package, archived or active.
	// The soft-delete timestamp is written exactly as carried by the
	// aggregate, so Update also performs archival and restoration.
	Update(ctx context.Context, p *parcel.Parcel) error

	// Get retrieves a package by its identifier regardless of archive
	// state. Returns errs.ObjectNotFoundError if the row is absent, which
	// includes permanently deleted packages.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// HardDelete permanently removes a package row. Irreversible; any
	// subsequent operation on the identifier reports not found.
	// Returns errs.ObjectNotFoundError if the row is already absent.
	HardDelete(ctx context.Context, id kernel.UUID) error
}
