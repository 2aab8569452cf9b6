package ports

import (
	"context"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/stock"
)

// StockRepository defines the persistence contract for stock entries and
// bins.
type StockRepository interface {
	// AddEntry persists a stock entry with its lines.
	AddEntry(ctx context.Context, entry *stock.Entry) error

	// UpdateEntry persists the document status of an entry.
	UpdateEntry(ctx context.Context, entry *stock.Entry) error

	// GetEntry returns the entry or an errs.ObjectNotFoundError.
	GetEntry(ctx context.Context, id kernel.UUID) (*stock.Entry, error)

	// GetBalances returns the on-hand quantity of the requested bins. Bins
	// that were never written are absent from the result. Rows are locked
	// for update until the transaction ends.
	GetBalances(ctx context.Context, keys []stock.BinKey) (stock.Balances, error)

	// SaveBins upserts the actual quantity of each bin.
	SaveBins(ctx context.Context, bins []stock.Bin) error
}

// WarehouseRepository defines the persistence contract for the company and
// warehouse directory.
type WarehouseRepository interface {
	// GetWarehouse returns the named warehouse or an errs.ObjectNotFoundError.
	GetWarehouse(ctx context.Context, name string) (*stock.Warehouse, error)

	AddWarehouse(ctx context.Context, warehouse stock.Warehouse) error

	// ListCompanies returns every company ordered by name.
	ListCompanies(ctx context.Context) ([]stock.Company, error)

	AddCompany(ctx context.Context, company stock.Company) error
}
