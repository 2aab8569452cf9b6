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

type pendingItemRow struct {
	DistributionID     uuid.UUID
	DistributionDate   time.Time
	ItemCode           string
	ItemName           string
	ClassGrade         string
	Qty                decimal.Decimal
	QtyCollected       decimal.Decimal
	QtyPending         decimal.Decimal
	ExpectedReturnDate *time.Time
}

func (r pendingItemRow) toResponse() (PendingItemResponse, error) {
	id, err := kernel.UUIDFromBytes(r.DistributionID[:])
	if err != nil {
		return PendingItemResponse{}, err
	}
	return PendingItemResponse{
		DistributionID:     id,
		DistributionDate:   r.DistributionDate,
		ItemCode:           r.ItemCode,
		ItemName:           r.ItemName,
		ClassGrade:         r.ClassGrade,
		QtyDistributed:     r.Qty,
		QtyCollected:       r.QtyCollected,
		QtyPending:         r.QtyPending,
		ExpectedReturnDate: r.ExpectedReturnDate,
	}, nil
}

const pendingItemsSQL = `
	SELECT
		d.id AS distribution_id,
		d.distribution_date,
		di.item_code,
		di.item_name,
		di.class_grade,
		di.qty,
		di.qty_collected,
		di.qty_pending,
		COALESCE(di.expected_return_date, d.expected_return_date) AS expected_return_date
	FROM distribution_items di
	JOIN distributions d ON d.id = di.distribution_id
	WHERE di.qty_pending > 0`

func scanPendingItems(db *gorm.DB, sql string, args ...any) ([]PendingItemResponse, error) {
	var rows []pendingItemRow
	if err := db.Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]PendingItemResponse, 0, len(rows))
	for _, row := range rows {
		item, err := row.toResponse()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

type GetDistributionPendingItemsQueryHandler struct {
	db *gorm.DB
}

func NewGetDistributionPendingItemsQueryHandler(db *gorm.DB) GetDistributionPendingItemsQueryHandler {
	return GetDistributionPendingItemsQueryHandler{db: db}
}

func (h GetDistributionPendingItemsQueryHandler) Handle(
	ctx context.Context,
	query GetDistributionPendingItemsQuery,
) ([]PendingItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	var count int64
	if err := db.Table("distributions").Where("id = ?", query.DistributionID().Bytes()).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errs.NewObjectNotFoundError("distribution", query.DistributionID())
	}

	return scanPendingItems(db, pendingItemsSQL+`
		AND d.id = ?
		ORDER BY di.idx
	`, query.DistributionID().Bytes())
}

type GetSchoolPendingSamplesQueryHandler struct {
	db *gorm.DB
}

func NewGetSchoolPendingSamplesQueryHandler(db *gorm.DB) GetSchoolPendingSamplesQueryHandler {
	return GetSchoolPendingSamplesQueryHandler{db: db}
}

// Handle lists every pending line across the school's outstanding distributions.
func (h GetSchoolPendingSamplesQueryHandler) Handle(
	ctx context.Context,
	query GetSchoolPendingQuery,
) ([]PendingItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanPendingItems(h.db.WithContext(ctx), pendingItemsSQL+`
		AND d.school_id = ?
		AND d.doc_status = ?
		AND d.status IN ?
		ORDER BY d.distribution_date, d.id, di.idx
	`, query.SchoolID().Bytes(), int(kernel.Submitted), outstandingStatuses())
}

type GetSchoolPendingDistributionsQueryHandler struct {
	db *gorm.DB
}

func NewGetSchoolPendingDistributionsQueryHandler(db *gorm.DB) GetSchoolPendingDistributionsQueryHandler {
	return GetSchoolPendingDistributionsQueryHandler{db: db}
}

func (h GetSchoolPendingDistributionsQueryHandler) Handle(
	ctx context.Context,
	query GetSchoolPendingQuery,
) ([]PendingDistributionResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			distribution_date,
			expected_return_date,
			distributor_name,
			total_distributed,
			total_collected,
			total_pending,
			status
		FROM distributions
		WHERE school_id = ? AND doc_status = ? AND status IN ?
		ORDER BY distribution_date, id
	`, query.SchoolID().Bytes(), int(kernel.Submitted), outstandingStatuses()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	distributions := make([]PendingDistributionResponse, 0)
	for rows.Next() {
		var resp PendingDistributionResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&resp.DistributionDate,
			&resp.ExpectedReturnDate,
			&resp.DistributorName,
			&resp.TotalDistributed,
			&resp.TotalCollected,
			&resp.TotalPending,
			&status,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		resp.Status = distribution.Status(status).String()
		distributions = append(distributions, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return distributions, nil
}

func outstandingStatuses() []int {
	return []int{int(distribution.Distributed), int(distribution.PartiallyCollected)}
}
