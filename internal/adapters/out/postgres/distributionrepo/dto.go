// Package distributionrepo persists distributions and their item lines with
// optimistic locking on the version column.
package distributionrepo

import (
	"time"

	"booksamples/internal/core/domain/model/distribution"
	"booksamples/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DistributionDTO is the distributions table row. Status is stored for the
// report queries; it is recomputed on load.
type DistributionDTO struct {
	ID                 uuid.UUID             `gorm:"type:uuid;primaryKey"`
	SchoolID           uuid.UUID             `gorm:"type:uuid;not null;index"`
	VehicleID          *uuid.UUID            `gorm:"type:uuid;index"`
	LoadingID          *uuid.UUID            `gorm:"type:uuid;index"`
	DistributorName    string                `gorm:"type:varchar(255)"`
	DistributionDate   time.Time             `gorm:"type:date;not null;index"`
	ExpectedReturnDate *time.Time            `gorm:"type:date"`
	SourceWarehouse    string                `gorm:"type:varchar(255)"`
	TargetWarehouse    string                `gorm:"type:varchar(255)"`
	TotalDistributed   decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	TotalCollected     decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	TotalPending       decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	StockEntryID       *uuid.UUID            `gorm:"type:uuid"`
	DocStatus          int                   `gorm:"type:smallint;not null;index"`
	Status             int                   `gorm:"type:smallint;not null;index"`
	Version            int                   `gorm:"not null;default:1"`
	Items              []DistributionItemDTO `gorm:"foreignKey:DistributionID;constraint:OnDelete:CASCADE"`
}

func (DistributionDTO) TableName() string {
	return "distributions"
}

// DistributionItemDTO is a distribution_items row.
type DistributionItemDTO struct {
	ID                 uint            `gorm:"primaryKey;autoIncrement"`
	DistributionID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Idx                int             `gorm:"not null"`
	ItemCode           string          `gorm:"type:varchar(140);not null;index"`
	ItemName           string          `gorm:"type:varchar(255)"`
	ClassGrade         string          `gorm:"type:varchar(140)"`
	Subject            string          `gorm:"type:varchar(140)"`
	Qty                decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	QtyCollected       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	QtyPending         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	AvailableQtyInVan  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	ExpectedReturnDate *time.Time      `gorm:"type:date"`
	CollectionStatus   int             `gorm:"type:smallint;not null"`
}

func (DistributionItemDTO) TableName() string {
	return "distribution_items"
}

func fromDomain(d *distribution.Distribution) DistributionDTO {
	id := d.ID().Bytes()
	items := make([]DistributionItemDTO, 0, len(d.Items()))
	for i, item := range d.Items() {
		items = append(items, DistributionItemDTO{
			DistributionID:     id,
			Idx:                i + 1,
			ItemCode:           item.ItemCode(),
			ItemName:           item.ItemName(),
			ClassGrade:         item.ClassGrade(),
			Subject:            item.Subject(),
			Qty:                item.Qty(),
			QtyCollected:       item.QtyCollected(),
			QtyPending:         item.QtyPending(),
			AvailableQtyInVan:  item.AvailableQtyInVan(),
			ExpectedReturnDate: item.ExpectedReturnDate(),
			CollectionStatus:   int(item.CollectionStatus()),
		})
	}

	return DistributionDTO{
		ID:                 id,
		SchoolID:           d.SchoolID().Bytes(),
		VehicleID:          kernel.UUIDPtrToBytes(d.VehicleID()),
		LoadingID:          kernel.UUIDPtrToBytes(d.LoadingID()),
		DistributorName:    d.DistributorName(),
		DistributionDate:   d.DistributionDate(),
		ExpectedReturnDate: d.ExpectedReturnDate(),
		SourceWarehouse:    d.SourceWarehouse(),
		TargetWarehouse:    d.TargetWarehouse(),
		TotalDistributed:   d.TotalDistributed(),
		TotalCollected:     d.TotalCollected(),
		TotalPending:       d.TotalPending(),
		StockEntryID:       kernel.UUIDPtrToBytes(d.StockEntryID()),
		DocStatus:          int(d.DocStatus()),
		Status:             int(d.Status()),
		Version:            d.Version(),
		Items:              items,
	}
}

func toDomain(dto DistributionDTO) (*distribution.Distribution, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	schoolID, err := kernel.UUIDFromBytes(dto.SchoolID[:])
	if err != nil {
		return nil, err
	}
	vehicleID, err := kernel.UUIDPtrFromBytes(dto.VehicleID)
	if err != nil {
		return nil, err
	}
	loadingID, err := kernel.UUIDPtrFromBytes(dto.LoadingID)
	if err != nil {
		return nil, err
	}
	stockEntryID, err := kernel.UUIDPtrFromBytes(dto.StockEntryID)
	if err != nil {
		return nil, err
	}

	items := make([]distribution.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := distribution.RestoreItem(itemDTO.ItemCode, itemDTO.ItemName, itemDTO.ClassGrade,
			itemDTO.Subject, itemDTO.Qty, itemDTO.QtyCollected, itemDTO.AvailableQtyInVan,
			itemDTO.ExpectedReturnDate, distribution.CollectionStatus(itemDTO.CollectionStatus))
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return distribution.RestoreDistribution(id, distribution.Header{
		SchoolID:           schoolID,
		VehicleID:          vehicleID,
		LoadingID:          loadingID,
		DistributorName:    dto.DistributorName,
		DistributionDate:   dto.DistributionDate,
		ExpectedReturnDate: dto.ExpectedReturnDate,
		SourceWarehouse:    dto.SourceWarehouse,
		TargetWarehouse:    dto.TargetWarehouse,
	}, items, stockEntryID, kernel.DocStatus(dto.DocStatus), dto.Version)
}
