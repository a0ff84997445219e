// Package postgres provides the GORM-backed datastore adapter.
//
// The adapter hands out repositories bound to a shared database connection.
// There is deliberately no transaction boundary spanning repository calls:
// the datastore contract guarantees per-row atomicity only, and multi-step
// write sequences in the application layer recover through compensating
// actions rather than rollback. Each repository call is an independent
// round-trip against the same *gorm.DB.
package postgres

import (
	"mailroom/internal/adapters/out/postgres/allocationrepo"
	"mailroom/internal/adapters/out/postgres/lockerrepo"
	"mailroom/internal/adapters/out/postgres/parcelrepo"
	"mailroom/internal/adapters/out/postgres/siterepo"
	"mailroom/internal/core/ports"

	"gorm.io/gorm"
)

// GormStore hands out repositories bound to the shared GORM connection.
// It implements ports.Store.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a repository provider over the given connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// SiteRepository returns the site repository.
func (s *GormStore) SiteRepository() ports.SiteRepository {
	return siterepo.NewGormSiteRepository(s.db)
}

// LockerRepository returns the locker repository.
func (s *GormStore) LockerRepository() ports.LockerRepository {
	return lockerrepo.NewGormLockerRepository(s.db)
}

// AllocationRepository returns the allocation repository.
func (s *GormStore) AllocationRepository() ports.AllocationRepository {
	return allocationrepo.NewGormAllocationRepository(s.db)
}

// ParcelRepository returns the package repository.
func (s *GormStore) ParcelRepository() ports.ParcelRepository {
	return parcelrepo.NewGormParcelRepository(s.db)
}
