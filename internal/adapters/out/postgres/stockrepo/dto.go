// Package stockrepo persists stock entries, bins and the warehouse directory.
package stockrepo

import (
	"time"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/stock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockEntryDTO is the stock_entries table row. PostedAt is set when the
// row is inserted, which happens when the owning document is submitted.
type StockEntryDTO struct {
	ID          uuid.UUID           `gorm:"type:uuid;primaryKey"`
	EntryType   int                 `gorm:"type:smallint;not null"`
	PostingDate time.Time           `gorm:"type:date;not null;index"`
	VoucherType string              `gorm:"type:varchar(64);not null"`
	VoucherID   uuid.UUID           `gorm:"type:uuid;not null;index"`
	DocStatus   int                 `gorm:"type:smallint;not null"`
	PostedAt    time.Time           `gorm:"autoCreateTime;not null;index"`
	Lines       []StockEntryLineDTO `gorm:"foreignKey:EntryID;constraint:OnDelete:CASCADE"`
}

func (StockEntryDTO) TableName() string {
	return "stock_entries"
}

type StockEntryLineDTO struct {
	ID              uint            `gorm:"primaryKey;autoIncrement"`
	EntryID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Idx             int             `gorm:"not null"`
	ItemCode        string          `gorm:"type:varchar(140);not null"`
	Qty             decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	SourceWarehouse string          `gorm:"type:varchar(255)"`
	TargetWarehouse string          `gorm:"type:varchar(255)"`
}

func (StockEntryLineDTO) TableName() string {
	return "stock_entry_lines"
}

// BinDTO is the on-hand quantity of one item in one warehouse.
type BinDTO struct {
	ItemCode  string          `gorm:"type:varchar(140);primaryKey"`
	Warehouse string          `gorm:"type:varchar(255);primaryKey"`
	ActualQty decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

func (BinDTO) TableName() string {
	return "bins"
}

type WarehouseDTO struct {
	Name    string `gorm:"type:varchar(255);primaryKey"`
	Company string `gorm:"type:varchar(255);not null"`
	Parent  string `gorm:"type:varchar(255)"`
	IsGroup bool   `gorm:"not null"`
}

func (WarehouseDTO) TableName() string {
	return "warehouses"
}

type CompanyDTO struct {
	Name      string `gorm:"type:varchar(255);primaryKey"`
	Abbr      string `gorm:"type:varchar(16);not null"`
	IsDefault bool   `gorm:"not null"`
}

func (CompanyDTO) TableName() string {
	return "companies"
}

func entryFromDomain(e *stock.Entry) StockEntryDTO {
	id := e.ID().Bytes()
	lines := make([]StockEntryLineDTO, 0, len(e.Lines()))
	for i, l := range e.Lines() {
		lines = append(lines, StockEntryLineDTO{
			EntryID:         id,
			Idx:             i + 1,
			ItemCode:        l.ItemCode,
			Qty:             l.Qty,
			SourceWarehouse: l.SourceWarehouse,
			TargetWarehouse: l.TargetWarehouse,
		})
	}

	return StockEntryDTO{
		ID:          id,
		EntryType:   int(e.Type()),
		PostingDate: e.PostingDate(),
		VoucherType: e.Reference().VoucherType,
		VoucherID:   e.Reference().VoucherID.Bytes(),
		DocStatus:   int(e.DocStatus()),
		Lines:       lines,
	}
}

func entryToDomain(dto StockEntryDTO) (*stock.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	voucherID, err := kernel.UUIDFromBytes(dto.VoucherID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]stock.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		lines = append(lines, stock.Line{
			ItemCode:        l.ItemCode,
			Qty:             l.Qty,
			SourceWarehouse: l.SourceWarehouse,
			TargetWarehouse: l.TargetWarehouse,
		})
	}

	return stock.RestoreEntry(id, stock.EntryType(dto.EntryType), dto.PostingDate,
		stock.Reference{VoucherType: dto.VoucherType, VoucherID: voucherID}, lines, kernel.DocStatus(dto.DocStatus))
}
