package postgres

import (
	"booksamples/internal/adapters/out/postgres/catalogrepo"
	"booksamples/internal/adapters/out/postgres/collectionrepo"
	"booksamples/internal/adapters/out/postgres/distributionrepo"
	"booksamples/internal/adapters/out/postgres/loadingrepo"
	"booksamples/internal/adapters/out/postgres/schoolrepo"
	"booksamples/internal/adapters/out/postgres/stockrepo"
	"booksamples/internal/adapters/out/postgres/vehiclerepo"

	"gorm.io/gorm"
)

// Tables lists every table in truncation order, for tests.
var Tables = []string{
	"loading_items", "loadings",
	"distribution_items", "distributions",
	"collection_items", "collections",
	"stock_entry_lines", "stock_entries", "bins",
	"vehicles", "schools", "customers",
	"warehouses", "companies", "items", "class_grades",
}

// Models returns the GORM models of every table.
func Models() []any {
	return []any{
		&loadingrepo.LoadingDTO{}, &loadingrepo.LoadingItemDTO{},
		&distributionrepo.DistributionDTO{}, &distributionrepo.DistributionItemDTO{},
		&collectionrepo.CollectionDTO{}, &collectionrepo.CollectionItemDTO{},
		&stockrepo.StockEntryDTO{}, &stockrepo.StockEntryLineDTO{}, &stockrepo.BinDTO{},
		&stockrepo.WarehouseDTO{}, &stockrepo.CompanyDTO{},
		&vehiclerepo.VehicleDTO{},
		&schoolrepo.SchoolDTO{}, &schoolrepo.CustomerDTO{},
		&catalogrepo.ItemDTO{}, &catalogrepo.ClassGradeDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
