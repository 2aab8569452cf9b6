package stockrepo

import (
	"context"
	"errors"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/stock"
	"booksamples/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStockRepository implements ports.StockRepository using GORM.
type GormStockRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormStockRepository(db *gorm.DB, tracker aggregateTracker) *GormStockRepository {
	return &GormStockRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormStockRepository) AddEntry(ctx context.Context, entry *stock.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := entryFromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// UpdateEntry writes the document status. Lines of a persisted entry never
// change.
func (r *GormStockRepository) UpdateEntry(ctx context.Context, entry *stock.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&StockEntryDTO{}).
		Where("id = ?", entry.ID().Bytes()).
		Update("doc_status", int(entry.DocStatus()))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

func (r *GormStockRepository) GetEntry(ctx context.Context, id kernel.UUID) (*stock.Entry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StockEntryDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("idx") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stock entry", id.String())
		}
		return nil, err
	}

	return entryToDomain(dto)
}

// GetBalances selects the requested bins FOR UPDATE so concurrent postings
// against the same bins serialize.
func (r *GormStockRepository) GetBalances(ctx context.Context, keys []stock.BinKey) (stock.Balances, error) {
	balances := make(stock.Balances, len(keys))
	if len(keys) == 0 {
		return balances, nil
	}

	pairs := make([][]any, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, []any{k.ItemCode, k.Warehouse})
	}

	var dtos []BinDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("(item_code, warehouse) IN ?", pairs).
		Order("warehouse, item_code").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		balances[stock.BinKey{ItemCode: dto.ItemCode, Warehouse: dto.Warehouse}] = dto.ActualQty
	}
	return balances, nil
}

func (r *GormStockRepository) SaveBins(ctx context.Context, bins []stock.Bin) error {
	if len(bins) == 0 {
		return nil
	}

	dtos := make([]BinDTO, 0, len(bins))
	for _, b := range bins {
		dtos = append(dtos, BinDTO{ItemCode: b.ItemCode, Warehouse: b.Warehouse, ActualQty: b.ActualQty})
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "item_code"}, {Name: "warehouse"}},
			DoUpdates: clause.AssignmentColumns([]string{"actual_qty"}),
		}).
		Create(&dtos).Error
}
