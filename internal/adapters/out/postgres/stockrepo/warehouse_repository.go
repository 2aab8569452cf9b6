package stockrepo

import (
	"context"
	"errors"

	"booksamples/internal/core/domain/model/stock"
	"booksamples/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWarehouseRepository implements ports.WarehouseRepository using GORM.
type GormWarehouseRepository struct {
	db *gorm.DB
}

func NewGormWarehouseRepository(db *gorm.DB) *GormWarehouseRepository {
	return &GormWarehouseRepository{db: db}
}

func (r *GormWarehouseRepository) GetWarehouse(ctx context.Context, name string) (*stock.Warehouse, error) {
	var dto WarehouseDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("warehouse", name)
		}
		return nil, err
	}

	w, err := stock.NewWarehouse(dto.Name, dto.Company, dto.Parent, dto.IsGroup)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *GormWarehouseRepository) AddWarehouse(ctx context.Context, warehouse stock.Warehouse) error {
	dto := WarehouseDTO{
		Name:    warehouse.Name(),
		Company: warehouse.Company(),
		Parent:  warehouse.Parent(),
		IsGroup: warehouse.IsGroup(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormWarehouseRepository) ListCompanies(ctx context.Context) ([]stock.Company, error) {
	var dtos []CompanyDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	companies := make([]stock.Company, 0, len(dtos))
	for _, dto := range dtos {
		c, err := stock.NewCompany(dto.Name, dto.Abbr, dto.IsDefault)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, nil
}

func (r *GormWarehouseRepository) AddCompany(ctx context.Context, company stock.Company) error {
	dto := CompanyDTO{Name: company.Name(), Abbr: company.Abbr(), IsDefault: company.IsDefault()}
	return r.db.WithContext(ctx).Create(&dto).Error
}
