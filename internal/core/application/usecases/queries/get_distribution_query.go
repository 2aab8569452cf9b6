package queries

import (
	"errors"
	"time"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetDistributionQueryIsNotConstructed = errors.New(
	"GetDistributionQuery must be created via NewGetDistributionQuery constructor",
)

type GetDistributionQuery struct {
	distributionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDistributionQuery(distributionID kernel.UUID) (GetDistributionQuery, error) {
	if err := distributionID.Validate(); err != nil {
		return GetDistributionQuery{}, err
	}
	return GetDistributionQuery{distributionID: distributionID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDistributionQuery) Validate() error {
	return q.guard.Validate(ErrGetDistributionQueryIsNotConstructed)
}

func (q GetDistributionQuery) DistributionID() kernel.UUID {
	return q.distributionID
}

type GetDistributionQueryResponse struct {
	ID                 kernel.UUID                `json:"id"`
	SchoolID           kernel.UUID                `json:"school_id"`
	SchoolName         string                     `json:"school_name"`
	VehicleID          *kernel.UUID               `json:"vehicle_id,omitempty"`
	VehicleNumber      string                     `json:"vehicle_number,omitempty"`
	LoadingID          *kernel.UUID               `json:"loading_id,omitempty"`
	DistributorName    string                     `json:"distributor_name"`
	DistributionDate   time.Time                  `json:"distribution_date"`
	ExpectedReturnDate *time.Time                 `json:"expected_return_date,omitempty"`
	SourceWarehouse    string                     `json:"source_warehouse"`
	TargetWarehouse    string                     `json:"target_warehouse"`
	TotalDistributed   decimal.Decimal            `json:"total_distributed"`
	TotalCollected     decimal.Decimal            `json:"total_collected"`
	TotalPending       decimal.Decimal            `json:"total_pending"`
	StockEntryID       *kernel.UUID               `json:"stock_entry_id,omitempty"`
	DocStatus          string                     `json:"doc_status"`
	Status             string                     `json:"status"`
	Version            int                        `json:"version"`
	Items              []DistributionItemResponse `json:"items"`
}

type DistributionItemResponse struct {
	ItemCode           string          `json:"item_code"`
	ItemName           string          `json:"item_name"`
	ClassGrade         string          `json:"class_grade"`
	Subject            string          `json:"subject"`
	Qty                decimal.Decimal `json:"qty"`
	QtyCollected       decimal.Decimal `json:"qty_collected"`
	QtyPending         decimal.Decimal `json:"qty_pending"`
	AvailableQtyInVan  decimal.Decimal `json:"available_qty_in_van"`
	ExpectedReturnDate *time.Time      `json:"expected_return_date,omitempty"`
	CollectionStatus   string          `json:"collection_status"`
}
