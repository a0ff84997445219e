package queries

import (
	"context"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetArchivedParcelsQueryHandler lists soft-deleted packages using direct
// SQL for the CQRS read path.
type GetArchivedParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetArchivedParcelsQueryHandler creates a handler for archived package
// listing queries.
func NewGetArchivedParcelsQueryHandler(db *gorm.DB) GetArchivedParcelsQueryHandler {
	return GetArchivedParcelsQueryHandler{db: db}
}

// Handle executes the query, applying the optional registration filter.
// Results are sorted by archival time, most recent first.
func (h GetArchivedParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetArchivedParcelsQuery,
) ([]GetArchivedParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			registration_id,
			tracking_number,
			status,
			release_proof_url,
			deleted_at
		FROM parcels
		WHERE deleted_at IS NOT NULL
	`
	args := make([]any, 0, 1)

	if query.RegistrationID() != nil {
		sql += ` AND registration_id = ?`
		args = append(args, query.RegistrationID().String())
	}

	sql += ` ORDER BY deleted_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parcels := make([]GetArchivedParcelsQueryResponse, 0)

	for rows.Next() {
		var resp GetArchivedParcelsQueryResponse
		var id, registrationID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&registrationID,
			&resp.TrackingNumber,
			&status,
			&resp.ReleaseProofURL,
			&resp.ArchivedAt,
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
