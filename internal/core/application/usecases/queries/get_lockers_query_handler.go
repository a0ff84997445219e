package queries

import (
	"context"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/locker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLockersQueryHandler lists lockers using direct SQL for the CQRS read
// path.
type GetLockersQueryHandler struct {
	db *gorm.DB
}

// NewGetLockersQueryHandler creates a handler for locker listing queries.
func NewGetLockersQueryHandler(db *gorm.DB) GetLockersQueryHandler {
	return GetLockersQueryHandler{db: db}
}

// Handle executes the query, applying the optional site filter. Results are
// sorted by code.
func (h GetLockersQueryHandler) Handle(
	ctx context.Context,
	query GetLockersQuery,
) ([]GetLockersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			site_id,
			code,
			is_available,
			occupancy
		FROM lockers
	`
	args := make([]any, 0, 1)

	if query.SiteID() != nil {
		sql += ` WHERE site_id = ?`
		args = append(args, query.SiteID().String())
	}

	sql += ` ORDER BY code`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lockers := make([]GetLockersQueryResponse, 0)

	for rows.Next() {
		var resp GetLockersQueryResponse
		var id, siteID uuid.UUID
		var occupancy int

		err = rows.Scan(
			&id,
			&siteID,
			&resp.Code,
			&resp.IsAvailable,
			&occupancy,
		)
		if err != nil {
			return nil, err
		}

		lockerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = lockerID

		ownerID, idErr := kernel.UUIDFromBytes(siteID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.SiteID = ownerID

		status := locker.OccupancyStatus(occupancy)
		if statusErr := status.Validate(); statusErr != nil {
			return nil, statusErr
		}
		resp.Occupancy = status

		lockers = append(lockers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lockers, nil
}
