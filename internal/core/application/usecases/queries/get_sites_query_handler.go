package queries

import (
	"context"

	"mailroom/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSitesQueryHandler lists sites with their locker counters using direct
// SQL for the CQRS read path.
type GetSitesQueryHandler struct {
	db *gorm.DB
}

// NewGetSitesQueryHandler creates a handler for site listing queries.
func NewGetSitesQueryHandler(db *gorm.DB) GetSitesQueryHandler {
	return GetSitesQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by name.
func (h GetSitesQueryHandler) Handle(
	ctx context.Context,
	query GetSitesQuery,
) ([]GetSitesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sites := make([]GetSitesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address,
			total_lockers
		FROM sites
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetSitesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Address,
			&resp.TotalLockers,
		)
		if err != nil {
			return nil, err
		}

		siteID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = siteID

		sites = append(sites, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sites, nil
}
