package queries

import (
	"errors"
	"strings"

	"booksamples/internal/pkg/errs"
	"booksamples/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetItemClassGradesQueryIsNotConstructed = errors.New(
	"GetItemClassGradesQuery must be created via NewGetItemClassGradesQuery constructor",
)

type GetItemClassGradesQuery struct {
	itemCode string

	guard guard.ConstructorGuard
}

func NewGetItemClassGradesQuery(itemCode string) (GetItemClassGradesQuery, error) {
	itemCode = strings.TrimSpace(itemCode)
	if itemCode == "" {
		return GetItemClassGradesQuery{}, errs.NewValueIsRequiredError("item code")
	}
	return GetItemClassGradesQuery{itemCode: itemCode, guard: guard.NewConstructorGuard()}, nil
}

func (q GetItemClassGradesQuery) Validate() error {
	return q.guard.Validate(ErrGetItemClassGradesQueryIsNotConstructed)
}

func (q GetItemClassGradesQuery) ItemCode() string {
	return q.itemCode
}

var ErrGetStockBalanceQueryIsNotConstructed = errors.New(
	"GetStockBalanceQuery must be created via NewGetStockBalanceQuery constructor",
)

// GetStockBalanceQuery reads the on-hand quantity of one item in one warehouse.
type GetStockBalanceQuery struct {
	itemCode  string
	warehouse string

	guard guard.ConstructorGuard
}

func NewGetStockBalanceQuery(itemCode, warehouse string) (GetStockBalanceQuery, error) {
	itemCode = strings.TrimSpace(itemCode)
	warehouse = strings.TrimSpace(warehouse)
	if itemCode == "" {
		return GetStockBalanceQuery{}, errs.NewValueIsRequiredError("item code")
	}
	if warehouse == "" {
		return GetStockBalanceQuery{}, errs.NewValueIsRequiredError("warehouse")
	}
	return GetStockBalanceQuery{itemCode: itemCode, warehouse: warehouse, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStockBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetStockBalanceQueryIsNotConstructed)
}

func (q GetStockBalanceQuery) ItemCode() string {
	return q.itemCode
}

func (q GetStockBalanceQuery) Warehouse() string {
	return q.warehouse
}

type GetStockBalanceQueryResponse struct {
	ItemCode  string          `json:"item_code"`
	Warehouse string          `json:"warehouse"`
	ActualQty decimal.Decimal `json:"actual_qty"`
}
