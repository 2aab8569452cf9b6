package loadingrepo

import (
	"context"
	"errors"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/loading"
	"booksamples/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLoadingRepository implements ports.LoadingRepository using GORM.
type GormLoadingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormLoadingRepository(db *gorm.DB, tracker aggregateTracker) *GormLoadingRepository {
	return &GormLoadingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new loading together with its lines.
func (r *GormLoadingRepository) Add(ctx context.Context, aggregate *loading.Loading) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every header column and replaces the lines.
func (r *GormLoadingRepository) Update(ctx context.Context, aggregate *loading.Loading) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&LoadingDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := db.Where("loading_id = ?", dto.ID).Delete(&LoadingItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Items) > 0 {
		if err := db.Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a loading with its lines in their original order.
func (r *GormLoadingRepository) Get(ctx context.Context, id kernel.UUID) (*loading.Loading, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LoadingDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("idx") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("loading", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
