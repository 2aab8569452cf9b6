// Package vehicle models the vans that carry samples to schools. Every vehicle
// owns exactly one warehouse holding the books currently on board.
package vehicle

import (
	"errors"
	"fmt"
	"strings"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/pkg/errs"
)

var (
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
	ErrVehicleHasNoWarehouse   = errors.New("vehicle does not have a warehouse assigned")
)

// WarehouseNamePrefix is prepended to the vehicle number to name its warehouse.
const WarehouseNamePrefix = "Van - "

// Vehicle is a delivery van.
type Vehicle struct {
	id            kernel.UUID
	number        string
	vehicleType   string
	driverName    string
	driverPhone   string
	warehouse     string
	isConstructed bool
}

// NewVehicle creates a vehicle without a warehouse. Provisioning assigns one.
func NewVehicle(id kernel.UUID, number, vehicleType, driverName, driverPhone string) (*Vehicle, error) {
	return RestoreVehicle(id, number, vehicleType, driverName, driverPhone, "")
}

// RestoreVehicle rebuilds a vehicle from persistence.
func RestoreVehicle(id kernel.UUID, number, vehicleType, driverName, driverPhone, warehouse string) (*Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, errs.NewValueIsRequiredError("vehicle number")
	}

	return &Vehicle{
		id:            id,
		number:        number,
		vehicleType:   vehicleType,
		driverName:    driverName,
		driverPhone:   driverPhone,
		warehouse:     warehouse,
		isConstructed: true,
	}, nil
}

// Validate ensures the vehicle was created through its constructor.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

func (v *Vehicle) ID() kernel.UUID { return v.id }
func (v *Vehicle) Number() string { return v.number }
func (v *Vehicle) VehicleType() string { return v.vehicleType }
func (v *Vehicle) DriverName() string { return v.driverName }
func (v *Vehicle) DriverPhone() string { return v.driverPhone }
func (v *Vehicle) Warehouse() string { return v.warehouse }

// HasWarehouse reports whether a warehouse has been provisioned.
func (v *Vehicle) HasWarehouse() bool {
	return v.warehouse != ""
}

// WarehouseName is the deterministic name of this vehicle's warehouse.
func (v *Vehicle) WarehouseName() string {
	return WarehouseNamePrefix + v.number
}

// RequireWarehouse returns the vehicle warehouse or ErrVehicleHasNoWarehouse.
func (v *Vehicle) RequireWarehouse() (string, error) {
	if !v.HasWarehouse() {
		return "", fmt.Errorf("%w: %s", ErrVehicleHasNoWarehouse, v.number)
	}
	return v.warehouse, nil
}

// AssignWarehouse links the vehicle to its warehouse. A vehicle that already
// has one keeps it.
func (v *Vehicle) AssignWarehouse(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("warehouse")
	}
	if v.HasWarehouse() {
		return nil
	}
	v.warehouse = name
	return nil
}
