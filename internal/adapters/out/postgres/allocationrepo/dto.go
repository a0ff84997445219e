// Package allocationrepo provides data transfer objects and mapping
// functions for allocation persistence.
package allocationrepo

import (
	"time"

	"mailroom/internal/core/domain/model/allocation"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/locker"

	"github.com/google/uuid"
)

// AllocationDTO represents the database structure for persisting allocation
// aggregates.
type AllocationDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	RegistrationID uuid.UUID `gorm:"type:uuid;index"`
	LockerID       uuid.UUID `gorm:"type:uuid;index"`
	AssignedAt     time.Time
	Occupancy      int
}

// TableName specifies the database table name for allocation entities.
func (AllocationDTO) TableName() string {
	return "allocations"
}

// fromDomain converts an allocation domain aggregate to its database
// representation.
func fromDomain(a *allocation.Allocation) AllocationDTO {
	return AllocationDTO{
		ID:             a.ID().Bytes(),
		RegistrationID: a.RegistrationID().Bytes(),
		LockerID:       a.LockerID().Bytes(),
		AssignedAt:     a.AssignedAt(),
		Occupancy:      int(a.Occupancy()),
	}
}

// toDomain converts a database DTO to an allocation domain aggregate.
func toDomain(dto AllocationDTO) (*allocation.Allocation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	registrationID, err := kernel.UUIDFromBytes(dto.RegistrationID[:])
	if err != nil {
		return nil, err
	}

	lockerID, err := kernel.UUIDFromBytes(dto.LockerID[:])
	if err != nil {
		return nil, err
	}

	return allocation.RestoreAllocation(
		id,
		registrationID,
		lockerID,
		dto.AssignedAt,
		locker.OccupancyStatus(dto.Occupancy),
	)
}
