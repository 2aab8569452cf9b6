package catalogrepo

import (
	"context"
	"errors"

	"booksamples/internal/core/domain/model/catalog"
	"booksamples/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCatalogRepository implements ports.CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) AddItem(ctx context.Context, item *catalog.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormCatalogRepository) GetItem(ctx context.Context, code string) (*catalog.Item, error) {
	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", code)
		}
		return nil, err
	}

	return itemToDomain(dto)
}

func (r *GormCatalogRepository) ListClassGrades(ctx context.Context) ([]catalog.ClassGrade, error) {
	var dtos []ClassGradeDTO
	if err := r.db.WithContext(ctx).Order("grade_order").Find(&dtos).Error; err != nil {
		return nil, err
	}

	grades := make([]catalog.ClassGrade, 0, len(dtos))
	for _, dto := range dtos {
		g, err := catalog.NewClassGrade(dto.Name, dto.Order, dto.IsActive)
		if err != nil {
			return nil, err
		}
		grades = append(grades, g)
	}
	return grades, nil
}

// AddClassGrade inserts the grade, leaving an existing one with the same
// name untouched.
func (r *GormCatalogRepository) AddClassGrade(ctx context.Context, grade catalog.ClassGrade) error {
	dto := ClassGradeDTO{Name: grade.Name(), Order: grade.Order(), IsActive: grade.IsActive()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&dto).Error
}
