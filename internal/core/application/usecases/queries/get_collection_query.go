package queries

import (
	"errors"
	"time"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCollectionQueryIsNotConstructed = errors.New(
	"GetCollectionQuery must be created via NewGetCollectionQuery constructor",
)

type GetCollectionQuery struct {
	collectionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCollectionQuery(collectionID kernel.UUID) (GetCollectionQuery, error) {
	if err := collectionID.Validate(); err != nil {
		return GetCollectionQuery{}, err
	}
	return GetCollectionQuery{collectionID: collectionID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCollectionQuery) Validate() error {
	return q.guard.Validate(ErrGetCollectionQueryIsNotConstructed)
}

func (q GetCollectionQuery) CollectionID() kernel.UUID {
	return q.collectionID
}

type GetCollectionQueryResponse struct {
	ID              kernel.UUID              `json:"id"`
	SchoolID        kernel.UUID              `json:"school_id"`
	SchoolName      string                   `json:"school_name"`
	DistributionID  *kernel.UUID             `json:"distribution_id,omitempty"`
	VehicleID       *kernel.UUID             `json:"vehicle_id,omitempty"`
	CollectorName   string                   `json:"collector_name"`
	CollectionDate  time.Time                `json:"collection_date"`
	SourceWarehouse string                   `json:"source_warehouse"`
	TargetWarehouse string                   `json:"target_warehouse"`
	TotalCollected  decimal.Decimal          `json:"total_collected"`
	TotalDamaged    decimal.Decimal          `json:"total_damaged"`
	TotalLost       decimal.Decimal          `json:"total_lost"`
	StockEntryID    *kernel.UUID             `json:"stock_entry_id,omitempty"`
	DamagedEntryID  *kernel.UUID             `json:"damaged_entry_id,omitempty"`
	DocStatus       string                   `json:"doc_status"`
	Status          string                   `json:"status"`
	Items           []CollectionItemResponse `json:"items"`
}

type CollectionItemResponse struct {
	ItemCode               string          `json:"item_code"`
	ItemName               string          `json:"item_name"`
	ClassGrade             string          `json:"class_grade"`
	QtyDistributed         decimal.Decimal `json:"qty_distributed"`
	QtyPreviouslyCollected decimal.Decimal `json:"qty_previously_collected"`
	QtyPending             decimal.Decimal `json:"qty_pending"`
	QtyCollected           decimal.Decimal `json:"qty_collected"`
	QtyDamaged             decimal.Decimal `json:"qty_damaged"`
	QtyLost                decimal.Decimal `json:"qty_lost"`
}
