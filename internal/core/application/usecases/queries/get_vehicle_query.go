package queries

import (
	"errors"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/pkg/guard"
)

var ErrGetVehicleQueryIsNotConstructed = errors.New(
	"GetVehicleQuery must be created via NewGetVehicleQuery constructor",
)

type GetVehicleQuery struct {
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetVehicleQuery(vehicleID kernel.UUID) (GetVehicleQuery, error) {
	if err := vehicleID.Validate(); err != nil {
		return GetVehicleQuery{}, err
	}
	return GetVehicleQuery{vehicleID: vehicleID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetVehicleQuery) Validate() error {
	return q.guard.Validate(ErrGetVehicleQueryIsNotConstructed)
}

func (q GetVehicleQuery) VehicleID() kernel.UUID {
	return q.vehicleID
}

type GetVehicleQueryResponse struct {
	ID          kernel.UUID `json:"id"`
	Number      string      `json:"number"`
	VehicleType string      `json:"vehicle_type"`
	DriverName  string      `json:"driver_name"`
	DriverPhone string      `json:"driver_phone"`
	Warehouse   string      `json:"warehouse"`
}
