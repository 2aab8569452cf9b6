package queries

import (
	"errors"
	"time"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetDistributionPendingItemsQueryIsNotConstructed = errors.New(
	"GetDistributionPendingItemsQuery must be created via NewGetDistributionPendingItemsQuery constructor",
)

// GetDistributionPendingItemsQuery lists the lines of a distribution that
// still have samples at the school.
type GetDistributionPendingItemsQuery struct {
	distributionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDistributionPendingItemsQuery(distributionID kernel.UUID) (GetDistributionPendingItemsQuery, error) {
	if err := distributionID.Validate(); err != nil {
		return GetDistributionPendingItemsQuery{}, err
	}
	return GetDistributionPendingItemsQuery{distributionID: distributionID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDistributionPendingItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetDistributionPendingItemsQueryIsNotConstructed)
}

func (q GetDistributionPendingItemsQuery) DistributionID() kernel.UUID {
	return q.distributionID
}

// PendingItemResponse is an outstanding distribution line.
type PendingItemResponse struct {
	DistributionID     kernel.UUID     `json:"distribution_id"`
	DistributionDate   time.Time       `json:"distribution_date"`
	ItemCode           string          `json:"item_code"`
	ItemName           string          `json:"item_name"`
	ClassGrade         string          `json:"class_grade"`
	QtyDistributed     decimal.Decimal `json:"qty_distributed"`
	QtyCollected       decimal.Decimal `json:"qty_collected"`
	QtyPending         decimal.Decimal `json:"qty_pending"`
	ExpectedReturnDate *time.Time      `json:"expected_return_date,omitempty"`
}

var ErrGetSchoolPendingQueryIsNotConstructed = errors.New(
	"GetSchoolPendingQuery must be created via NewGetSchoolPendingQuery constructor",
)

// GetSchoolPendingQuery addresses the outstanding samples of one school.
// It drives both the pending distributions and the pending samples lookups.
type GetSchoolPendingQuery struct {
	schoolID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetSchoolPendingQuery(schoolID kernel.UUID) (GetSchoolPendingQuery, error) {
	if err := schoolID.Validate(); err != nil {
		return GetSchoolPendingQuery{}, err
	}
	return GetSchoolPendingQuery{schoolID: schoolID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetSchoolPendingQuery) Validate() error {
	return q.guard.Validate(ErrGetSchoolPendingQueryIsNotConstructed)
}

func (q GetSchoolPendingQuery) SchoolID() kernel.UUID {
	return q.schoolID
}

// PendingDistributionResponse is a submitted distribution with samples still
// at the school.
type PendingDistributionResponse struct {
	ID                 kernel.UUID     `json:"id"`
	DistributionDate   time.Time       `json:"distribution_date"`
	ExpectedReturnDate *time.Time      `json:"expected_return_date,omitempty"`
	DistributorName    string          `json:"distributor_name"`
	TotalDistributed   decimal.Decimal `json:"total_distributed"`
	TotalCollected     decimal.Decimal `json:"total_collected"`
	TotalPending       decimal.Decimal `json:"total_pending"`
	Status             string          `json:"status"`
}
