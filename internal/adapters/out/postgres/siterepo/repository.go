package siterepo

import (
	"context"
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/site"
	"mailroom/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSiteRepository implements SiteRepository using GORM.
type GormSiteRepository struct {
	db *gorm.DB
}

// NewGormSiteRepository creates a new GORM site repository.
func NewGormSiteRepository(db *gorm.DB) *GormSiteRepository {
	return &GormSiteRepository{db: db}
}

// Add saves a new site to the database.
func (r *GormSiteRepository) Add(ctx context.Context, aggregate *site.Site) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewUnavailableErrorWithCause("datastore", err)
	}

	return nil
}

// Update saves an existing site to the database. All columns are written,
// including a locker counter of zero.
func (r *GormSiteRepository) Update(ctx context.Context, aggregate *site.Site) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&SiteDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewUnavailableErrorWithCause("datastore", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("site", aggregate.ID().String())
	}

	return nil
}

// IncrementLockerCount bumps the site's locker counter in a single atomic
// update, avoiding a read-modify-write race with concurrent provisioning.
func (r *GormSiteRepository) IncrementLockerCount(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&SiteDTO{}).
		Where("id = ?", id.Bytes()).
		UpdateColumn("total_lockers", gorm.Expr("total_lockers + ?", 1))
	if result.Error != nil {
		return errs.NewUnavailableErrorWithCause("datastore", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("site", id.String())
	}

	return nil
}

// Get retrieves a site by ID.
func (r *GormSiteRepository) Get(ctx context.Context, id kernel.UUID) (*site.Site, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SiteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("site", id.String())
		}
		return nil, errs.NewUnavailableErrorWithCause("datastore", err)
	}

	return toDomain(dto)
}

// GetAll retrieves all sites ordered by name.
func (r *GormSiteRepository) GetAll(ctx context.Context) ([]*site.Site, error) {
	var dtos []SiteDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, errs.NewUnavailableErrorWithCause("datastore", err)
	}

	sites := make([]*site.Site, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		sites = append(sites, s)
	}

	return sites, nil
}
