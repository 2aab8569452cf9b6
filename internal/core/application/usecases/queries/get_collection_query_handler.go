package queries

import (
	"context"
	"time"

	"booksamples/internal/core/domain/model/collection"
	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetCollectionQueryHandler struct {
	db *gorm.DB
}

func NewGetCollectionQueryHandler(db *gorm.DB) GetCollectionQueryHandler {
	return GetCollectionQueryHandler{db: db}
}

type collectionRow struct {
	SchoolID        uuid.UUID
	SchoolName      string
	DistributionID  *uuid.UUID
	VehicleID       *uuid.UUID
	CollectorName   string
	CollectionDate  time.Time
	SourceWarehouse string
	TargetWarehouse string
	TotalCollected  decimal.Decimal
	TotalDamaged    decimal.Decimal
	TotalLost       decimal.Decimal
	StockEntryID    *uuid.UUID
	DamagedEntryID  *uuid.UUID
	DocStatus       int
	Status          int
}

func (h GetCollectionQueryHandler) Handle(ctx context.Context, query GetCollectionQuery) (GetCollectionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCollectionQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.CollectionID()

	var rows []collectionRow
	err := db.Raw(`
		SELECT
			c.school_id,
			COALESCE(s.name, '') AS school_name,
			c.distribution_id,
			c.vehicle_id,
			c.collector_name,
			c.collection_date,
			c.source_warehouse,
			c.target_warehouse,
			c.total_collected,
			c.total_damaged,
			c.total_lost,
			c.stock_entry_id,
			c.damaged_entry_id,
			c.doc_status,
			c.status
		FROM collections c
		LEFT JOIN schools s ON s.id = c.school_id
		WHERE c.id = ?
	`, id.Bytes()).Scan(&rows).Error
	if err != nil {
		return GetCollectionQueryResponse{}, err
	}
	if len(rows) == 0 {
		return GetCollectionQueryResponse{}, errs.NewObjectNotFoundError("collection", id)
	}
	row := rows[0]

	resp := GetCollectionQueryResponse{
		ID:              id,
		SchoolName:      row.SchoolName,
		CollectorName:   row.CollectorName,
		CollectionDate:  row.CollectionDate,
		SourceWarehouse: row.SourceWarehouse,
		TargetWarehouse: row.TargetWarehouse,
		TotalCollected:  row.TotalCollected,
		TotalDamaged:    row.TotalDamaged,
		TotalLost:       row.TotalLost,
		DocStatus:       kernel.DocStatus(row.DocStatus).String(),
		Status:          collection.Status(row.Status).String(),
		Items:           make([]CollectionItemResponse, 0),
	}
	if resp.SchoolID, err = kernel.UUIDFromBytes(row.SchoolID[:]); err != nil {
		return GetCollectionQueryResponse{}, err
	}
	for _, ref := range []struct {
		raw *uuid.UUID
		dst **kernel.UUID
	}{
		{row.DistributionID, &resp.DistributionID},
		{row.VehicleID, &resp.VehicleID},
		{row.StockEntryID, &resp.StockEntryID},
		{row.DamagedEntryID, &resp.DamagedEntryID},
	} {
		if *ref.dst, err = kernel.UUIDPtrFromBytes(ref.raw); err != nil {
			return GetCollectionQueryResponse{}, err
		}
	}

	err = db.Raw(`
		SELECT
			item_code, item_name, class_grade, qty_distributed, qty_previously_collected,
			qty_pending, qty_collected, qty_damaged, qty_lost
		FROM collection_items
		WHERE collection_id = ?
		ORDER BY idx
	`, id.Bytes()).Scan(&resp.Items).Error
	if err != nil {
		return GetCollectionQueryResponse{}, err
	}

	return resp, nil
}
