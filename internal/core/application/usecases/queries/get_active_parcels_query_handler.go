package queries

import (
	"context"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveParcelsQueryHandler lists non-archived packages using direct SQL
// for the CQRS read path. Archived rows are excluded by the soft-delete
// filter; they stay queryable through GetArchivedParcelsQuery.
type GetActiveParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveParcelsQueryHandler creates a handler for active package
// listing queries.
func NewGetActiveParcelsQueryHandler(db *gorm.DB) GetActiveParcelsQueryHandler {
	return GetActiveParcelsQueryHandler{db: db}
}

// Handle executes the query, applying the optional registration filter.
// Results are sorted by tracking number.
func (h GetActiveParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveParcelsQuery,
) ([]GetActiveParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			registration_id,
			tracking_number,
			status,
			release_proof_url
		FROM parcels
		WHERE deleted_at IS NULL
	`
	args := make([]any, 0, 1)

	if query.RegistrationID() != nil {
		sql += ` AND registration_id = ?`
		args = append(args, query.RegistrationID().String())
	}

	sql += ` ORDER BY tracking_number`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parcels := make([]GetActiveParcelsQueryResponse, 0)

	for rows.Next() {
		var resp GetActiveParcelsQueryResponse
		var id, registrationID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&registrationID,
			&resp.TrackingNumber,
			&status,
			&resp.ReleaseProofURL,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = parcelID

		ownerID, idErr := kernel.UUIDFromBytes(registrationID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.RegistrationID = ownerID

		parcelStatus := parcel.Status(status)
		if statusErr := parcelStatus.Validate(); statusErr != nil {
			return nil, statusErr
		}
		resp.Status = parcelStatus

		parcels = append(parcels, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
