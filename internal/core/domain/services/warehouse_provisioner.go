package services

import (
	"booksamples/internal/core/domain/model/stock"
	"booksamples/internal/core/domain/model/vehicle"
)

// WarehouseProvisioner gives a vehicle its dedicated warehouse.
//
// Business rules:
//   - the warehouse is named "Van - <vehicle number>"
//   - an existing warehouse of that name is reused
//   - otherwise it is created under the root group of the default company
//   - a vehicle that already has a warehouse is left alone
type WarehouseProvisioner struct{}

func NewWarehouseProvisioner() WarehouseProvisioner {
	return WarehouseProvisioner{}
}

// Provision links v to its warehouse.
//
// Parameters:
//   - v: the vehicle
//   - existing: the warehouse named v.WarehouseName(), nil when none exists
//   - companies: all configured companies
//
// Returns the warehouse to create, nil when nothing has to be created.
// stock.ErrNoCompany is returned when a warehouse is needed but no company
// exists.
func (p WarehouseProvisioner) Provision(
	v *vehicle.Vehicle,
	existing *stock.Warehouse,
	companies []stock.Company,
) (*stock.Warehouse, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if v.HasWarehouse() {
		return nil, nil
	}

	if existing != nil {
		return nil, v.AssignWarehouse(existing.Name())
	}

	company, err := stock.PickDefaultCompany(companies)
	if err != nil {
		return nil, err
	}
	warehouse, err := stock.NewWarehouse(v.WarehouseName(), company.Name(), company.RootGroup(), false)
	if err != nil {
		return nil, err
	}
	if err = v.AssignWarehouse(warehouse.Name()); err != nil {
		return nil, err
	}
	return &warehouse, nil
}
