// Package siterepo provides data transfer objects and mapping functions for
// site persistence. The site row carries the denormalized locker counter
// alongside the descriptive fields.
package siterepo

import (
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/site"

	"github.com/google/uuid"
)

// SiteDTO represents the database structure for persisting site aggregates.
type SiteDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Address      string
	TotalLockers int
}

// TableName specifies the database table name for site entities.
func (SiteDTO) TableName() string {
	return "sites"
}

// fromDomain converts a site domain aggregate to its database representation.
func fromDomain(s *site.Site) SiteDTO {
	return SiteDTO{
		ID:           s.ID().Bytes(),
		Name:         s.Name(),
		Address:      s.Address(),
		TotalLockers: s.TotalLockers(),
	}
}

// toDomain converts a database DTO to a site domain aggregate.
func toDomain(dto SiteDTO) (*site.Site, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return site.RestoreSite(id, dto.Name, dto.Address, dto.TotalLockers)
}
