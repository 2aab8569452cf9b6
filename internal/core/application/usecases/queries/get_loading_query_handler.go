package queries

import (
	"context"
	"time"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/loading"
	"booksamples/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetLoadingQueryHandler struct {
	db *gorm.DB
}

func NewGetLoadingQueryHandler(db *gorm.DB) GetLoadingQueryHandler {
	return GetLoadingQueryHandler{db: db}
}

type loadingRow struct {
	ID              uuid.UUID
	VehicleID       uuid.UUID
	VehicleNumber   string
	DriverName      string
	LoadingDate     time.Time
	SourceWarehouse string
	TargetWarehouse string
	TotalQty        decimal.Decimal
	StockEntryID    *uuid.UUID
	DocStatus       int
	Status          int
}

func (h GetLoadingQueryHandler) Handle(ctx context.Context, query GetLoadingQuery) (GetLoadingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLoadingQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var rows []loadingRow
	err := db.Raw(`
		SELECT
			l.id,
			l.vehicle_id,
			COALESCE(v.number, '') AS vehicle_number,
			l.driver_name,
			l.loading_date,
			l.source_warehouse,
			l.target_warehouse,
			l.total_qty,
			l.stock_entry_id,
			l.doc_status,
			l.status
		FROM loadings l
		LEFT JOIN vehicles v ON v.id = l.vehicle_id
		WHERE l.id = ?
	`, query.LoadingID().Bytes()).Scan(&rows).Error
	if err != nil {
		return GetLoadingQueryResponse{}, err
	}
	if len(rows) == 0 {
		return GetLoadingQueryResponse{}, errs.NewObjectNotFoundError("loading", query.LoadingID())
	}
	row := rows[0]

	resp := GetLoadingQueryResponse{
		ID:              query.LoadingID(),
		VehicleNumber:   row.VehicleNumber,
		DriverName:      row.DriverName,
		LoadingDate:     row.LoadingDate,
		SourceWarehouse: row.SourceWarehouse,
		TargetWarehouse: row.TargetWarehouse,
		TotalQty:        row.TotalQty,
		DocStatus:       kernel.DocStatus(row.DocStatus).String(),
		Status:          loading.Status(row.Status).String(),
		Items:           make([]LoadingItemResponse, 0),
	}
	if resp.VehicleID, err = kernel.UUIDFromBytes(row.VehicleID[:]); err != nil {
		return GetLoadingQueryResponse{}, err
	}
	if resp.StockEntryID, err = kernel.UUIDPtrFromBytes(row.StockEntryID); err != nil {
		return GetLoadingQueryResponse{}, err
	}

	err = db.Raw(`
		SELECT item_code, item_name, class_grade, qty, available_qty
		FROM loading_items
		WHERE loading_id = ?
		ORDER BY idx
	`, query.LoadingID().Bytes()).Scan(&resp.Items).Error
	if err != nil {
		return GetLoadingQueryResponse{}, err
	}

	return resp, nil
}
