// Package lockerrepo provides data transfer objects and mapping functions
// for locker persistence. Lockers are indexed by owning site for the
// capacity reconciliation scan.
package lockerrepo

import (
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/locker"

	"github.com/google/uuid"
)

// LockerDTO represents the database structure for persisting locker
// aggregates.
type LockerDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SiteID      uuid.UUID `gorm:"type:uuid;index"`
	Code        string
	IsAvailable bool
	Occupancy   int
}

// TableName specifies the database table name for locker entities.
func (LockerDTO) TableName() string {
	return "lockers"
}

// fromDomain converts a locker domain aggregate to its database
// representation.
func fromDomain(l *locker.Locker) LockerDTO {
	return LockerDTO{
		ID:          l.ID().Bytes(),
		SiteID:      l.SiteID().Bytes(),
		Code:        l.Code(),
		IsAvailable: l.IsAvailable(),
		Occupancy:   int(l.Occupancy()),
	}
}

// toDomain converts a database DTO to a locker domain aggregate.
func toDomain(dto LockerDTO) (*locker.Locker, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	siteID, err := kernel.UUIDFromBytes(dto.SiteID[:])
	if err != nil {
		return nil, err
	}

	return locker.RestoreLocker(id, siteID, dto.Code, dto.IsAvailable, locker.OccupancyStatus(dto.Occupancy))
}
