package commands

import (
	"context"
)

// ProvisionVehicleWarehouseCommandHandler provisions the warehouse of a
// vehicle created before a company was configured.
type ProvisionVehicleWarehouseCommandHandler struct {
	uowFactory VehicleUoWFactory
}

func NewProvisionVehicleWarehouseCommandHandler(uowFactory VehicleUoWFactory) ProvisionVehicleWarehouseCommandHandler {
	return ProvisionVehicleWarehouseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the name of the vehicle's warehouse.
func (h ProvisionVehicleWarehouseCommandHandler) Handle(
	ctx context.Context,
	cmd ProvisionVehicleWarehouseCommand,
) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	v, err := uow.VehicleRepository().Get(ctx, cmd.VehicleID())
	if err != nil {
		return "", err
	}
	if v.HasWarehouse() {
		return v.Warehouse(), nil
	}

	if err = provisionWarehouse(ctx, uow, v); err != nil {
		return "", err
	}
	if err = uow.VehicleRepository().Update(ctx, v); err != nil {
		return "", err
	}
	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return v.Warehouse(), nil
}
