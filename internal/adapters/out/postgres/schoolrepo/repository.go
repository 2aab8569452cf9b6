package schoolrepo

import (
	"context"
	"errors"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/school"
	"booksamples/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSchoolRepository implements ports.SchoolRepository using GORM.
type GormSchoolRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormSchoolRepository(db *gorm.DB, tracker aggregateTracker) *GormSchoolRepository {
	return &GormSchoolRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormSchoolRepository) Add(ctx context.Context, aggregate *school.School) error {
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

func (r *GormSchoolRepository) Update(ctx context.Context, aggregate *school.School) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&SchoolDTO{}).Where("id = ?", dto.ID).Select("*").Omit("id").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormSchoolRepository) Get(ctx context.Context, id kernel.UUID) (*school.School, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SchoolDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("school", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AddCustomer inserts the customer row. Customers are not tracked: they have
// no behaviour after creation.
func (r *GormSchoolRepository) AddCustomer(ctx context.Context, customer *school.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	dto := customerFromDomain(customer)
	return r.db.WithContext(ctx).Create(&dto).Error
}
