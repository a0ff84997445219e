package lockerrepo

import (
	"context"
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/locker"
	"mailroom/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLockerRepository implements LockerRepository using GORM.
type GormLockerRepository struct {
	db *gorm.DB
}

// NewGormLockerRepository creates a new GORM locker repository.
func NewGormLockerRepository(db *gorm.DB) *GormLockerRepository {
	return &GormLockerRepository{db: db}
}

// Add saves a new locker to the database.
func (r *GormLockerRepository) Add(ctx context.Context, aggregate *locker.Locker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewUnavailableErrorWithCause("datastore", err)
	}

	return nil
}

// Update saves an existing locker to the database. All columns are written
// so availability can be flipped back to false.
func (r *GormLockerRepository) Update(ctx context.Context, aggregate *locker.Locker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&LockerDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewUnavailableErrorWithCause("datastore", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("locker", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a locker by ID.
func (r *GormLockerRepository) Get(ctx context.Context, id kernel.UUID) (*locker.Locker, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LockerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("locker", id.String())
		}
		return nil, errs.NewUnavailableErrorWithCause("datastore", err)
	}

	return toDomain(dto)
}

// GetAll retrieves lockers ordered by code, filtered to one site when
// siteID is non-nil.
func (r *GormLockerRepository) GetAll(ctx context.Context, siteID *kernel.UUID) ([]*locker.Locker, error) {
	tx := r.db.WithContext(ctx).Order("code")
	if siteID != nil {
		if err := siteID.Validate(); err != nil {
			return nil, err
		}
		tx = tx.Where("site_id = ?", siteID.Bytes())
	}

	var dtos []LockerDTO
	if err := tx.Find(&dtos).Error; err != nil {
		return nil, errs.NewUnavailableErrorWithCause("datastore", err)
	}

	lockers := make([]*locker.Locker, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		lockers = append(lockers, l)
	}

	return lockers, nil
}

// Delete hard-deletes a locker row. The owning site's counter is adjusted
// by the caller afterwards.
func (r *GormLockerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&LockerDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return errs.NewUnavailableErrorWithCause("datastore", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("locker", id.String())
	}

	return nil
}

// CountBySite returns the live locker count for a site from a table scan.
func (r *GormLockerRepository) CountBySite(ctx context.Context, siteID kernel.UUID) (int, error) {
	if err := siteID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&LockerDTO{}).
		Where("site_id = ?", siteID.Bytes()).
		Count(&count).Error
	if err != nil {
		return 0, errs.NewUnavailableErrorWithCause("datastore", err)
	}

	return int(count), nil
}
