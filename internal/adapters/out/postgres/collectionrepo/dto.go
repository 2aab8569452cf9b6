// Package collectionrepo persists collections and their item lines.
package collectionrepo

import (
	"time"

	"booksamples/internal/core/domain/model/collection"
	"booksamples/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CollectionDTO is the collections table row.
type CollectionDTO struct {
	ID              uuid.UUID           `gorm:"type:uuid;primaryKey"`
	SchoolID        uuid.UUID           `gorm:"type:uuid;not null;index"`
	DistributionID  *uuid.UUID          `gorm:"type:uuid;index"`
	VehicleID       *uuid.UUID          `gorm:"type:uuid;index"`
	CollectorName   string              `gorm:"type:varchar(255)"`
	CollectionDate  time.Time           `gorm:"type:date;not null;index"`
	SourceWarehouse string              `gorm:"type:varchar(255)"`
	TargetWarehouse string              `gorm:"type:varchar(255)"`
	TotalCollected  decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	TotalDamaged    decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	TotalLost       decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	StockEntryID    *uuid.UUID          `gorm:"type:uuid"`
	DamagedEntryID  *uuid.UUID          `gorm:"type:uuid"`
	DocStatus       int                 `gorm:"type:smallint;not null;index"`
	Status          int                 `gorm:"type:smallint;not null"`
	Items           []CollectionItemDTO `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE"`
}

func (CollectionDTO) TableName() string {
	return "collections"
}

// CollectionItemDTO is a collection_items row.
type CollectionItemDTO struct {
	ID                     uint            `gorm:"primaryKey;autoIncrement"`
	CollectionID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	Idx                    int             `gorm:"not null"`
	ItemCode               string          `gorm:"type:varchar(140);not null;index"`
	ItemName               string          `gorm:"type:varchar(255)"`
	ClassGrade             string          `gorm:"type:varchar(140)"`
	QtyDistributed         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	QtyPreviouslyCollected decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	QtyPending             decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	QtyCollected           decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	QtyDamaged             decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	QtyLost                decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

func (CollectionItemDTO) TableName() string {
	return "collection_items"
}

func fromDomain(c *collection.Collection) CollectionDTO {
	id := c.ID().Bytes()
	items := make([]CollectionItemDTO, 0, len(c.Items()))
	for i, item := range c.Items() {
		q := item.Quantities()
		items = append(items, CollectionItemDTO{
			CollectionID:           id,
			Idx:                    i + 1,
			ItemCode:               item.ItemCode(),
			ItemName:               item.ItemName(),
			ClassGrade:             item.ClassGrade(),
			QtyDistributed:         item.QtyDistributed(),
			QtyPreviouslyCollected: item.QtyPreviouslyCollected(),
			QtyPending:             item.QtyPending(),
			QtyCollected:           q.Collected,
			QtyDamaged:             q.Damaged,
			QtyLost:                q.Lost,
		})
	}

	return CollectionDTO{
		ID:              id,
		SchoolID:        c.SchoolID().Bytes(),
		DistributionID:  kernel.UUIDPtrToBytes(c.DistributionID()),
		VehicleID:       kernel.UUIDPtrToBytes(c.VehicleID()),
		CollectorName:   c.CollectorName(),
		CollectionDate:  c.CollectionDate(),
		SourceWarehouse: c.SourceWarehouse(),
		TargetWarehouse: c.TargetWarehouse(),
		TotalCollected:  c.TotalCollected(),
		TotalDamaged:    c.TotalDamaged(),
		TotalLost:       c.TotalLost(),
		StockEntryID:    kernel.UUIDPtrToBytes(c.ReturnEntryID()),
		DamagedEntryID:  kernel.UUIDPtrToBytes(c.WriteOffEntryID()),
		DocStatus:       int(c.DocStatus()),
		Status:          int(c.Status()),
		Items:           items,
	}
}

func toDomain(dto CollectionDTO) (*collection.Collection, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	schoolID, err := kernel.UUIDFromBytes(dto.SchoolID[:])
	if err != nil {
		return nil, err
	}
	distributionID, err := kernel.UUIDPtrFromBytes(dto.DistributionID)
	if err != nil {
		return nil, err
	}
	vehicleID, err := kernel.UUIDPtrFromBytes(dto.VehicleID)
	if err != nil {
		return nil, err
	}
	returnEntryID, err := kernel.UUIDPtrFromBytes(dto.StockEntryID)
	if err != nil {
		return nil, err
	}
	writeOffEntryID, err := kernel.UUIDPtrFromBytes(dto.DamagedEntryID)
	if err != nil {
		return nil, err
	}

	items := make([]collection.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := collection.NewItem(itemDTO.ItemCode, itemDTO.ItemName, itemDTO.ClassGrade,
			itemDTO.QtyDistributed, itemDTO.QtyPreviouslyCollected, itemDTO.QtyPending,
			collection.Quantities{
				Collected: itemDTO.QtyCollected,
				Damaged:   itemDTO.QtyDamaged,
				Lost:      itemDTO.QtyLost,
			})
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return collection.RestoreCollection(id, collection.Header{
		SchoolID:        schoolID,
		DistributionID:  distributionID,
		VehicleID:       vehicleID,
		CollectorName:   dto.CollectorName,
		CollectionDate:  dto.CollectionDate,
		SourceWarehouse: dto.SourceWarehouse,
		TargetWarehouse: dto.TargetWarehouse,
	}, items, returnEntryID, writeOffEntryID, kernel.DocStatus(dto.DocStatus), collection.Status(dto.Status))
}
