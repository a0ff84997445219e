// Package parcelrepo provides data transfer objects and mapping functions
// for package persistence. Archival uses the soft-delete column; the
// repository reaches archived rows through unscoped queries so they stay
// addressable until permanently purged.
package parcelrepo

import (
	"time"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParcelDTO represents the database structure for persisting package
// aggregates. DeletedAt doubles as the archival timestamp.
type ParcelDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	RegistrationID  uuid.UUID `gorm:"type:uuid;index"`
	TrackingNumber  string
	Status          int
	ReleaseProofURL *string
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for package entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a package domain aggregate to its database
// representation.
func fromDomain(p *parcel.Parcel) ParcelDTO {
	var deletedAt gorm.DeletedAt
	if t := p.DeletedAt(); t != nil {
		deletedAt = gorm.DeletedAt{Time: *t, Valid: true}
	}

	return ParcelDTO{
		ID:              p.ID().Bytes(),
		RegistrationID:  p.RegistrationID().Bytes(),
		TrackingNumber:  p.TrackingNumber(),
		Status:          int(p.Status()),
		ReleaseProofURL: p.ReleaseProofURL(),
		DeletedAt:       deletedAt,
	}
}

// toDomain converts a database DTO to a package domain aggregate.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	registrationID, err := kernel.UUIDFromBytes(dto.RegistrationID[:])
	if err != nil {
		return nil, err
	}

	var deletedAt *time.Time
	if dto.DeletedAt.Valid {
		t := dto.DeletedAt.Time
		deletedAt = &t
	}

	return parcel.RestoreParcel(
		id,
		registrationID,
		dto.TrackingNumber,
		parcel.Status(dto.Status),
		dto.ReleaseProofURL,
		deletedAt,
	)
}
