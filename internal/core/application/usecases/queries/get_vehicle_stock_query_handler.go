package queries

import (
	"context"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetVehicleStockQueryHandler struct {
	db *gorm.DB
}

func NewGetVehicleStockQueryHandler(db *gorm.DB) GetVehicleStockQueryHandler {
	return GetVehicleStockQueryHandler{db: db}
}

func (h GetVehicleStockQueryHandler) Handle(
	ctx context.Context,
	query GetVehicleStockQuery,
) ([]GetVehicleStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stock := make([]GetVehicleStockQueryResponse, 0)
	warehouse, err := vehicleWarehouse(ctx, h.db, query.VehicleID())
	if err != nil || warehouse == "" {
		return stock, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT b.item_code, COALESCE(i.name, '') AS item_name, b.warehouse, b.actual_qty
		FROM bins b
		LEFT JOIN items i ON i.code = b.item_code
		WHERE b.warehouse = ? AND b.actual_qty > 0
		ORDER BY b.item_code
	`, warehouse).Scan(&stock).Error
	if err != nil {
		return nil, err
	}
	return stock, nil
}

type GetVehicleItemsQueryHandler struct {
	db *gorm.DB
}

func NewGetVehicleItemsQueryHandler(db *gorm.DB) GetVehicleItemsQueryHandler {
	return GetVehicleItemsQueryHandler{db: db}
}

func (h GetVehicleItemsQueryHandler) Handle(
	ctx context.Context,
	query GetVehicleItemsQuery,
) ([]GetVehicleItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetVehicleItemsQueryResponse, 0)
	warehouse, err := vehicleWarehouse(ctx, h.db, query.VehicleID())
	if err != nil || warehouse == "" {
		return items, err
	}

	sql := `
		SELECT i.code, i.name, i.subject, i.class_grades, b.actual_qty
		FROM bins b
		JOIN items i ON i.code = b.item_code
		WHERE b.warehouse = ? AND b.actual_qty > 0`
	args := []any{warehouse}
	if query.ClassGrade() != "" {
		sql += ` AND ? = ANY(i.class_grades)`
		args = append(args, query.ClassGrade())
	}
	sql += ` ORDER BY i.code`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetVehicleItemsQueryResponse
		var grades pq.StringArray
		var qty decimal.Decimal
		if err = rows.Scan(&item.ItemCode, &item.ItemName, &item.Subject, &grades, &qty); err != nil {
			return nil, err
		}
		item.ClassGrades = []string(grades)
		if item.ClassGrades == nil {
			item.ClassGrades = []string{}
		}
		item.AvailableQty = qty
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
