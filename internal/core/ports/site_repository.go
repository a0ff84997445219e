package ports

import (
	"context"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/site"
)

// SiteRepository defines the persistence contract for site aggregates,
// including their denormalized locker counters.
type SiteRepository interface {
	// Add persists a new site.
	Add(ctx context.Context, s *site.Site) error

	// Update persists changes to an existing site. The locker counter is
	// written exactly as carried by the aggregate; the repository performs
	// no recomputation.
	Update(ctx context.Context, s *site.Site) error

	// IncrementLockerCount bumps the site's locker counter by one in a
	// single atomic update. Called after a locker row has been durably
	// created. Returns errs.ObjectNotFoundError if the site does not exist.
	IncrementLockerCount(ctx context.Context, id kernel.UUID) error

	// Get retrieves a site by its identifier.
	// Returns errs.ObjectNotFoundError if the site does not exist.
	Get(ctx context.Context, id kernel.UUID) (*site.Site, error)

	// GetAll retrieves all sites ordered by name.
	GetAll(ctx context.Context) ([]*site.Site, error)
}
