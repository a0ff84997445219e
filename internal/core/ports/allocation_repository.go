package ports

import (
	"context"

	"mailroom/internal/core/domain/model/allocation"
	"mailroom/internal/core/domain/model/kernel"
)

// AllocationRepository defines the persistence contract for allocations.
type AllocationRepository interface {
	// Add persists a new allocation.
	Add(ctx context.Context, a *allocation.Allocation) error

	// Get retrieves an allocation by its identifier.
	// Returns errs.ObjectNotFoundError if the allocation does not exist.
	Get(ctx context.Context, id kernel.UUID) (*allocation.Allocation, error)

	// Delete removes an allocation row. Used by explicit unassignment and as
	// the compensating action when the locker flip of an assignment fails.
	// Returns errs.ObjectNotFoundError if the allocation does not exist.
	Delete(ctx context.Context, id kernel.UUID) error
}
