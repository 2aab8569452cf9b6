package commands

import (
	"errors"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/pkg/guard"
)

var ErrProvisionVehicleWarehouseCommandIsNotConstructed = errors.New(
	"ProvisionVehicleWarehouseCommand must be created via NewProvisionVehicleWarehouseCommand constructor",
)

// ProvisionVehicleWarehouseCommand gives an existing vehicle its warehouse.
// It is a no-op for vehicles that already have one.
type ProvisionVehicleWarehouseCommand struct {
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

func NewProvisionVehicleWarehouseCommand(vehicleID kernel.UUID) (ProvisionVehicleWarehouseCommand, error) {
	if err := vehicleID.Validate(); err != nil {
		return ProvisionVehicleWarehouseCommand{}, err
	}
	return ProvisionVehicleWarehouseCommand{
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ProvisionVehicleWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrProvisionVehicleWarehouseCommandIsNotConstructed)
}

func (c ProvisionVehicleWarehouseCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}
