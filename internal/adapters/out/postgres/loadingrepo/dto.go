// Package loadingrepo persists loadings and their item lines.
package loadingrepo

import (
	"time"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/loading"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoadingDTO is the loadings table row.
type LoadingDTO struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey"`
	VehicleID       uuid.UUID        `gorm:"type:uuid;not null;index"`
	DriverName      string           `gorm:"type:varchar(255)"`
	LoadingDate     time.Time        `gorm:"type:date;not null;index"`
	SourceWarehouse string           `gorm:"type:varchar(255);not null"`
	TargetWarehouse string           `gorm:"type:varchar(255)"`
	TotalQty        decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	StockEntryID    *uuid.UUID       `gorm:"type:uuid"`
	DocStatus       int              `gorm:"type:smallint;not null;index"`
	Status          int              `gorm:"type:smallint;not null"`
	Items           []LoadingItemDTO `gorm:"foreignKey:LoadingID;constraint:OnDelete:CASCADE"`
}

func (LoadingDTO) TableName() string {
	return "loadings"
}

// LoadingItemDTO is a loading_items row. Idx keeps the line order.
type LoadingItemDTO struct {
	ID           uint            `gorm:"primaryKey;autoIncrement"`
	LoadingID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Idx          int             `gorm:"not null"`
	ItemCode     string          `gorm:"type:varchar(140);not null;index"`
	ItemName     string          `gorm:"type:varchar(255)"`
	ClassGrade   string          `gorm:"type:varchar(140)"`
	Qty          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	AvailableQty decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

func (LoadingItemDTO) TableName() string {
	return "loading_items"
}

func fromDomain(l *loading.Loading) LoadingDTO {
	id := l.ID().Bytes()
	items := make([]LoadingItemDTO, 0, len(l.Items()))
	for i, item := range l.Items() {
		items = append(items, LoadingItemDTO{
			LoadingID:    id,
			Idx:          i + 1,
			ItemCode:     item.ItemCode(),
			ItemName:     item.ItemName(),
			ClassGrade:   item.ClassGrade(),
			Qty:          item.Qty(),
			AvailableQty: item.AvailableQty(),
		})
	}

	return LoadingDTO{
		ID:              id,
		VehicleID:       l.VehicleID().Bytes(),
		DriverName:      l.DriverName(),
		LoadingDate:     l.LoadingDate(),
		SourceWarehouse: l.SourceWarehouse(),
		TargetWarehouse: l.TargetWarehouse(),
		TotalQty:        l.TotalQty(),
		StockEntryID:    kernel.UUIDPtrToBytes(l.StockEntryID()),
		DocStatus:       int(l.DocStatus()),
		Status:          int(l.Status()),
		Items:           items,
	}
}

func toDomain(dto LoadingDTO) (*loading.Loading, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}
	stockEntryID, err := kernel.UUIDPtrFromBytes(dto.StockEntryID)
	if err != nil {
		return nil, err
	}

	items := make([]loading.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := loading.RestoreItem(itemDTO.ItemCode, itemDTO.ItemName, itemDTO.ClassGrade,
			itemDTO.Qty, itemDTO.AvailableQty)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return loading.RestoreLoading(id, vehicleID, dto.DriverName, dto.LoadingDate, dto.SourceWarehouse,
		dto.TargetWarehouse, items, stockEntryID, kernel.DocStatus(dto.DocStatus), loading.Status(dto.Status))
}
