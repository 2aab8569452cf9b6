package queries

import (
	"context"
	"time"

	"booksamples/internal/core/domain/model/distribution"
	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetDistributionQueryHandler struct {
	db *gorm.DB
}

func NewGetDistributionQueryHandler(db *gorm.DB) GetDistributionQueryHandler {
	return GetDistributionQueryHandler{db: db}
}

type distributionRow struct {
	SchoolID           uuid.UUID
	SchoolName         string
	VehicleID          *uuid.UUID
	VehicleNumber      string
	LoadingID          *uuid.UUID
	DistributorName    string
	DistributionDate   time.Time
	ExpectedReturnDate *time.Time
	SourceWarehouse    string
	TargetWarehouse    string
	TotalDistributed   decimal.Decimal
	TotalCollected     decimal.Decimal
	TotalPending       decimal.Decimal
	StockEntryID       *uuid.UUID
	DocStatus          int
	Status             int
	Version            int
}

type distributionItemRow struct {
	ItemCode           string
	ItemName           string
	ClassGrade         string
	Subject            string
	Qty                decimal.Decimal
	QtyCollected       decimal.Decimal
	QtyPending         decimal.Decimal
	AvailableQtyInVan  decimal.Decimal
	ExpectedReturnDate *time.Time
	CollectionStatus   int
}

func (h GetDistributionQueryHandler) Handle(
	ctx context.Context,
	query GetDistributionQuery,
) (GetDistributionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDistributionQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.DistributionID()

	var rows []distributionRow
	err := db.Raw(`
		SELECT
			d.school_id,
			COALESCE(s.name, '') AS school_name,
			d.vehicle_id,
			COALESCE(v.number, '') AS vehicle_number,
			d.loading_id,
			d.distributor_name,
			d.distribution_date,
			d.expected_return_date,
			d.source_warehouse,
			d.target_warehouse,
			d.total_distributed,
			d.total_collected,
			d.total_pending,
			d.stock_entry_id,
			d.doc_status,
			d.status,
			d.version
		FROM distributions d
		LEFT JOIN schools s ON s.id = d.school_id
		LEFT JOIN vehicles v ON v.id = d.vehicle_id
		WHERE d.id = ?
	`, id.Bytes()).Scan(&rows).Error
	if err != nil {
		return GetDistributionQueryResponse{}, err
	}
	if len(rows) == 0 {
		return GetDistributionQueryResponse{}, errs.NewObjectNotFoundError("distribution", id)
	}
	row := rows[0]

	resp := GetDistributionQueryResponse{
		ID:                 id,
		SchoolName:         row.SchoolName,
		VehicleNumber:      row.VehicleNumber,
		DistributorName:    row.DistributorName,
		DistributionDate:   row.DistributionDate,
		ExpectedReturnDate: row.ExpectedReturnDate,
		SourceWarehouse:    row.SourceWarehouse,
		TargetWarehouse:    row.TargetWarehouse,
		TotalDistributed:   row.TotalDistributed,
		TotalCollected:     row.TotalCollected,
		TotalPending:       row.TotalPending,
		DocStatus:          kernel.DocStatus(row.DocStatus).String(),
		Status:             distribution.Status(row.Status).String(),
		Version:            row.Version,
	}
	if resp.SchoolID, err = kernel.UUIDFromBytes(row.SchoolID[:]); err != nil {
		return GetDistributionQueryResponse{}, err
	}
	if resp.VehicleID, err = kernel.UUIDPtrFromBytes(row.VehicleID); err != nil {
		return GetDistributionQueryResponse{}, err
	}
	if resp.LoadingID, err = kernel.UUIDPtrFromBytes(row.LoadingID); err != nil {
		return GetDistributionQueryResponse{}, err
	}
	if resp.StockEntryID, err = kernel.UUIDPtrFromBytes(row.StockEntryID); err != nil {
		return GetDistributionQueryResponse{}, err
	}

	var items []distributionItemRow
	err = db.Raw(`
		SELECT
			item_code, item_name, class_grade, subject, qty, qty_collected, qty_pending,
			available_qty_in_van, expected_return_date, collection_status
		FROM distribution_items
		WHERE distribution_id = ?
		ORDER BY idx
	`, id.Bytes()).Scan(&items).Error
	if err != nil {
		return GetDistributionQueryResponse{}, err
	}

	resp.Items = make([]DistributionItemResponse, 0, len(items))
	for _, item := range items {
		resp.Items = append(resp.Items, DistributionItemResponse{
			ItemCode:           item.ItemCode,
			ItemName:           item.ItemName,
			ClassGrade:         item.ClassGrade,
			Subject:            item.Subject,
			Qty:                item.Qty,
			QtyCollected:       item.QtyCollected,
			QtyPending:         item.QtyPending,
			AvailableQtyInVan:  item.AvailableQtyInVan,
			ExpectedReturnDate: item.ExpectedReturnDate,
			CollectionStatus:   distribution.CollectionStatus(item.CollectionStatus).String(),
		})
	}

	return resp, nil
}
