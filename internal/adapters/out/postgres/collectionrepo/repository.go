package collectionrepo

import (
	"context"
	"errors"

	"booksamples/internal/core/domain/model/collection"
	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCollectionRepository implements ports.CollectionRepository using GORM.
type GormCollectionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCollectionRepository(db *gorm.DB, tracker aggregateTracker) *GormCollectionRepository {
	return &GormCollectionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new collection together with its lines.
func (r *GormCollectionRepository) Add(ctx context.Context, aggregate *collection.Collection) error {
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
func (r *GormCollectionRepository) Update(ctx context.Context, aggregate *collection.Collection) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&CollectionDTO{}).
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

	if err := db.Where("collection_id = ?", dto.ID).Delete(&CollectionItemDTO{}).Error; err != nil {
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

// Get retrieves a collection with its lines in their original order.
func (r *GormCollectionRepository) Get(ctx context.Context, id kernel.UUID) (*collection.Collection, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CollectionDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("idx") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("collection", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
