package distributionrepo

import (
	"context"
	"errors"

	"booksamples/internal/core/domain/model/distribution"
	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDistributionRepository implements ports.DistributionRepository using GORM.
type GormDistributionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDistributionRepository(db *gorm.DB, tracker aggregateTracker) *GormDistributionRepository {
	return &GormDistributionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new distribution together with its lines.
func (r *GormDistributionRepository) Add(ctx context.Context, aggregate *distribution.Distribution) error {
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

// Update writes the distribution only if nobody changed it since it was
// loaded, then replaces the lines and advances the aggregate's version.
func (r *GormDistributionRepository) Update(ctx context.Context, aggregate *distribution.Distribution) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1
	db := r.db.WithContext(ctx)

	result := db.Model(&DistributionDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Omit("id", clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&DistributionDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return errs.NewVersionIsInvalidError("distribution")
	}

	if err := db.Where("distribution_id = ?", dto.ID).Delete(&DistributionItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Items) > 0 {
		if err := db.Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	aggregate.AdvanceVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a distribution with its lines in their original order.
func (r *GormDistributionRepository) Get(ctx context.Context, id kernel.UUID) (*distribution.Distribution, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DistributionDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("idx") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("distribution", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
