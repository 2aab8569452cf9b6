package queries

import (
	"context"

	"booksamples/internal/pkg/errs"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetItemClassGradesQueryHandler struct {
	db *gorm.DB
}

func NewGetItemClassGradesQueryHandler(db *gorm.DB) GetItemClassGradesQueryHandler {
	return GetItemClassGradesQueryHandler{db: db}
}

func (h GetItemClassGradesQueryHandler) Handle(ctx context.Context, query GetItemClassGradesQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT class_grades FROM items WHERE code = ?`, query.ItemCode()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("item", query.ItemCode())
	}

	var grades pq.StringArray
	if err = rows.Scan(&grades); err != nil {
		return nil, err
	}
	if grades == nil {
		return []string{}, nil
	}
	return []string(grades), nil
}

type GetStockBalanceQueryHandler struct {
	db *gorm.DB
}

func NewGetStockBalanceQueryHandler(db *gorm.DB) GetStockBalanceQueryHandler {
	return GetStockBalanceQueryHandler{db: db}
}

// Handle returns a zero balance when no bin exists for the pair.
func (h GetStockBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetStockBalanceQuery,
) (GetStockBalanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStockBalanceQueryResponse{}, err
	}

	var bins []struct{ ActualQty decimal.Decimal }
	err := h.db.WithContext(ctx).Raw(`
		SELECT actual_qty FROM bins WHERE item_code = ? AND warehouse = ?
	`, query.ItemCode(), query.Warehouse()).Scan(&bins).Error
	if err != nil {
		return GetStockBalanceQueryResponse{}, err
	}

	resp := GetStockBalanceQueryResponse{ItemCode: query.ItemCode(), Warehouse: query.Warehouse(), ActualQty: decimal.Zero}
	if len(bins) > 0 {
		resp.ActualQty = bins[0].ActualQty
	}
	return resp, nil
}
