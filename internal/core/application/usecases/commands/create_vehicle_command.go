package commands

import (
	"errors"
	"strings"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/pkg/errs"
	"booksamples/internal/pkg/guard"
)

var ErrCreateVehicleCommandIsNotConstructed = errors.New(
	"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
)

// CreateVehicleCommand registers a delivery vehicle. The handler provisions
// its "Van - <number>" warehouse in the same transaction.
//
// Example:
//
//	cmd, err := NewCreateVehicleCommand(kernel.NewUUID(), "KA01AB1234", "Van", "Ravi", "9845012345")
//	if err != nil {
//	    return fmt.Errorf("invalid vehicle: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID     kernel.UUID
	vehicleNumber string
	vehicleType   string
	driverName    string
	driverPhone   string

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand validates the id and the vehicle number.
func NewCreateVehicleCommand(
	vehicleID kernel.UUID,
	vehicleNumber, vehicleType, driverName, driverPhone string,
) (CreateVehicleCommand, error) {
	cmd := CreateVehicleCommand{
		vehicleType: vehicleType,
		driverName:  driverName,
		driverPhone: driverPhone,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVehicleID(vehicleID),
		cmd.setVehicleNumber(vehicleNumber),
	); err != nil {
		return CreateVehicleCommand{}, err
	}

	return cmd, nil
}

func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

func (c CreateVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c CreateVehicleCommand) VehicleNumber() string {
	return c.vehicleNumber
}

func (c CreateVehicleCommand) VehicleType() string {
	return c.vehicleType
}

func (c CreateVehicleCommand) DriverName() string {
	return c.driverName
}

func (c CreateVehicleCommand) DriverPhone() string {
	return c.driverPhone
}

func (c *CreateVehicleCommand) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.vehicleID = id
	return nil
}

func (c *CreateVehicleCommand) setVehicleNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("vehicle number")
	}
	c.vehicleNumber = number
	return nil
}
