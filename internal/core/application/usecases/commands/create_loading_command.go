package commands

import (
	"errors"
	"strings"
	"time"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/pkg/errs"
	"booksamples/internal/pkg/guard"
)

var ErrCreateLoadingCommandIsNotConstructed = errors.New(
	"CreateLoadingCommand must be created via NewCreateLoadingCommand constructor",
)

// CreateLoadingCommand drafts the loading of books from a warehouse into a
// vehicle. An empty target warehouse is resolved to the vehicle's warehouse
// and an empty driver name to the vehicle's driver.
//
// Example:
//
//	cmd, err := NewCreateLoadingCommand(kernel.NewUUID(), vanID, "", time.Now(), "Main Store", "",
//	    []ItemLine{{ItemCode: "MATH-5", Qty: decimal.NewFromInt(50)}})
type CreateLoadingCommand struct { //nolint:recvcheck //using for validation
	loadingID       kernel.UUID
	vehicleID       kernel.UUID
	driverName      string
	loadingDate     time.Time
	sourceWarehouse string
	targetWarehouse string
	items           []ItemLine

	guard guard.ConstructorGuard
}

func NewCreateLoadingCommand(
	loadingID, vehicleID kernel.UUID,
	driverName string,
	loadingDate time.Time,
	sourceWarehouse, targetWarehouse string,
	items []ItemLine,
) (CreateLoadingCommand, error) {
	cmd := CreateLoadingCommand{
		driverName:      driverName,
		loadingDate:     loadingDate,
		targetWarehouse: targetWarehouse,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loadingID.Validate(),
		cmd.setVehicleID(vehicleID),
		cmd.setSourceWarehouse(sourceWarehouse),
		cmd.setItems(items),
	); err != nil {
		return CreateLoadingCommand{}, err
	}

	cmd.loadingID = loadingID
	return cmd, nil
}

func (c CreateLoadingCommand) Validate() error {
	return c.guard.Validate(ErrCreateLoadingCommandIsNotConstructed)
}

func (c CreateLoadingCommand) LoadingID() kernel.UUID { return c.loadingID }
func (c CreateLoadingCommand) VehicleID() kernel.UUID { return c.vehicleID }
func (c CreateLoadingCommand) DriverName() string { return c.driverName }
func (c CreateLoadingCommand) LoadingDate() time.Time { return c.loadingDate }
func (c CreateLoadingCommand) SourceWarehouse() string { return c.sourceWarehouse }
func (c CreateLoadingCommand) TargetWarehouse() string { return c.targetWarehouse }
func (c CreateLoadingCommand) Items() []ItemLine { return append([]ItemLine(nil), c.items...) }

func (c *CreateLoadingCommand) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vehicle", err)
	}
	c.vehicleID = id
	return nil
}

func (c *CreateLoadingCommand) setSourceWarehouse(warehouse string) error {
	if strings.TrimSpace(warehouse) == "" {
		return errs.NewValueIsRequiredError("source warehouse")
	}
	c.sourceWarehouse = warehouse
	return nil
}

func (c *CreateLoadingCommand) setItems(items []ItemLine) error {
	if err := validateItemLines(items); err != nil {
		return err
	}
	c.items = append([]ItemLine(nil), items...)
	return nil
}
