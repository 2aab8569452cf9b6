package queries

import (
	"errors"
	"time"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetLoadingQueryIsNotConstructed = errors.New(
	"GetLoadingQuery must be created via NewGetLoadingQuery constructor",
)

// GetLoadingQuery reads one loading with its lines.
type GetLoadingQuery struct {
	loadingID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetLoadingQuery(loadingID kernel.UUID) (GetLoadingQuery, error) {
	if err := loadingID.Validate(); err != nil {
		return GetLoadingQuery{}, err
	}
	return GetLoadingQuery{loadingID: loadingID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetLoadingQuery) Validate() error {
	return q.guard.Validate(ErrGetLoadingQueryIsNotConstructed)
}

func (q GetLoadingQuery) LoadingID() kernel.UUID {
	return q.loadingID
}

// GetLoadingQueryResponse is a loading as shown to the user.
type GetLoadingQueryResponse struct {
	ID              kernel.UUID           `json:"id"`
	VehicleID       kernel.UUID           `json:"vehicle_id"`
	VehicleNumber   string                `json:"vehicle_number"`
	DriverName      string                `json:"driver_name"`
	LoadingDate     time.Time             `json:"loading_date"`
	SourceWarehouse string                `json:"source_warehouse"`
	TargetWarehouse string                `json:"target_warehouse"`
	TotalQty        decimal.Decimal       `json:"total_qty"`
	StockEntryID    *kernel.UUID          `json:"stock_entry_id,omitempty"`
	DocStatus       string                `json:"doc_status"`
	Status          string                `json:"status"`
	Items           []LoadingItemResponse `json:"items"`
}

type LoadingItemResponse struct {
	ItemCode     string          `json:"item_code"`
	ItemName     string          `json:"item_name"`
	ClassGrade   string          `json:"class_grade"`
	Qty          decimal.Decimal `json:"qty"`
	AvailableQty decimal.Decimal `json:"available_qty"`
}
