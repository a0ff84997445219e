package allocationrepo

import (
	"context"
	"errors"

	"mailroom/internal/core/domain/model/allocation"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAllocationRepository implements AllocationRepository using GORM.
type GormAllocationRepository struct {
	db *gorm.DB
}

// NewGormAllocationRepository creates a new GORM allocation repository.
func NewGormAllocationRepository(db *gorm.DB) *GormAllocationRepository {
	return &GormAllocationRepository{db: db}
}

// Add saves a new allocation to the database.
func (r *GormAllocationRepository) Add(ctx context.Context, aggregate *allocation.Allocation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewUnavailableErrorWithCause("datastore", err)
	}

	return nil
}

// Get retrieves an allocation by ID.
func (r *GormAllocationRepository) Get(ctx context.Context, id kernel.UUID) (*allocation.Allocation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AllocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("allocation", id.String())
		}
		return nil, errs.NewUnavailableErrorWithCause("datastore", err)
	}

	return toDomain(dto)
}

// Delete removes an allocation row. Also used as the compensating action
// when the locker flip of an assignment fails.
func (r *GormAllocationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&AllocationDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return errs.NewUnavailableErrorWithCause("datastore", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("allocation", id.String())
	}

	return nil
}
