package commands

import (
	"context"
	"errors"

	"booksamples/internal/core/domain/model/stock"
	"booksamples/internal/core/domain/model/vehicle"
	"booksamples/internal/core/domain/services"
	"booksamples/internal/pkg/errs"
)

// CreateVehicleCommandHandler creates a vehicle and its warehouse.
//
// Example:
//
//	handler := NewCreateVehicleCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, stock.ErrNoCompany) {
//	    log.Println("set up a company before adding vehicles")
//	}
type CreateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

func NewCreateVehicleCommandHandler(uowFactory VehicleUoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the vehicle, provisions its warehouse and saves both.
func (h CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	v, err := vehicle.NewVehicle(cmd.VehicleID(), cmd.VehicleNumber(), cmd.VehicleType(),
		cmd.DriverName(), cmd.DriverPhone())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = provisionWarehouse(ctx, uow, v); err != nil {
		return err
	}

	if err = uow.VehicleRepository().Add(ctx, v); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// provisionWarehouse links v to its warehouse, creating the warehouse when
// no warehouse of that name exists.
func provisionWarehouse(ctx context.Context, uow WarehouseRepoFactory, v *vehicle.Vehicle) error {
	if v.HasWarehouse() {
		return nil
	}

	warehouses := uow.WarehouseRepository()
	existing, err := warehouses.GetWarehouse(ctx, v.WarehouseName())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	var companies []stock.Company
	if existing == nil {
		if companies, err = warehouses.ListCompanies(ctx); err != nil {
			return err
		}
	}

	created, err := services.NewWarehouseProvisioner().Provision(v, existing, companies)
	if err != nil {
		return err
	}
	if created != nil {
		return warehouses.AddWarehouse(ctx, *created)
	}
	return nil
}
