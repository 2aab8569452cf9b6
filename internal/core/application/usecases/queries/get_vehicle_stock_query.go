package queries

import (
	"errors"
	"strings"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetVehicleStockQueryIsNotConstructed = errors.New(
	"GetVehicleStockQuery must be created via NewGetVehicleStockQuery constructor",
)

// GetVehicleStockQuery lists what is on hand in a vehicle's warehouse.
type GetVehicleStockQuery struct {
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetVehicleStockQuery(vehicleID kernel.UUID) (GetVehicleStockQuery, error) {
	if err := vehicleID.Validate(); err != nil {
		return GetVehicleStockQuery{}, err
	}
	return GetVehicleStockQuery{vehicleID: vehicleID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetVehicleStockQuery) Validate() error {
	return q.guard.Validate(ErrGetVehicleStockQueryIsNotConstructed)
}

func (q GetVehicleStockQuery) VehicleID() kernel.UUID {
	return q.vehicleID
}

type GetVehicleStockQueryResponse struct {
	ItemCode  string          `json:"item_code"`
	ItemName  string          `json:"item_name"`
	Warehouse string          `json:"warehouse"`
	ActualQty decimal.Decimal `json:"actual_qty"`
}

var ErrGetVehicleItemsQueryIsNotConstructed = errors.New(
	"GetVehicleItemsQuery must be created via NewGetVehicleItemsQuery constructor",
)

// GetVehicleItemsQuery lists sample books available in a vehicle, with
// their class grades, optionally narrowed to one grade.
type GetVehicleItemsQuery struct {
	vehicleID  kernel.UUID
	classGrade string

	guard guard.ConstructorGuard
}

func NewGetVehicleItemsQuery(vehicleID kernel.UUID, classGrade string) (GetVehicleItemsQuery, error) {
	if err := vehicleID.Validate(); err != nil {
		return GetVehicleItemsQuery{}, err
	}
	return GetVehicleItemsQuery{
		vehicleID:  vehicleID,
		classGrade: strings.TrimSpace(classGrade),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetVehicleItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetVehicleItemsQueryIsNotConstructed)
}

func (q GetVehicleItemsQuery) VehicleID() kernel.UUID {
	return q.vehicleID
}

func (q GetVehicleItemsQuery) ClassGrade() string {
	return q.classGrade
}

type GetVehicleItemsQueryResponse struct {
	ItemCode     string          `json:"item_code"`
	ItemName     string          `json:"item_name"`
	Subject      string          `json:"subject"`
	ClassGrades  []string        `json:"class_grades"`
	AvailableQty decimal.Decimal `json:"available_qty"`
}
