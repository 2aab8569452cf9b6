package commands_test

import (
	"testing"

	"booksamples/internal/core/application/usecases/commands"
	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/stock"
	"booksamples/internal/core/domain/model/vehicle"
	"booksamples/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateVehicleCommand(t *testing.T) commands.CreateVehicleCommand {
	t.Helper()
	cmd, err := commands.NewCreateVehicleCommand(kernel.NewUUID(), "KA01", "Van", "Ravi", "9845000000")
	require.NoError(t, err)
	return cmd
}

func TestCreateVehicleCommandHandler_Handle_ProvisionsWarehouse(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := newCreateVehicleCommand(t)
	company, err := stock.NewCompany("Acme Publishers", "AP", true)
	require.NoError(t, err)

	r := newRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.warehouses.On("GetWarehouse", ctx, "Van - KA01").
			Return(nil, errs.NewObjectNotFoundError("warehouse", "Van - KA01")).Once(),
		r.warehouses.On("ListCompanies", ctx).Return([]stock.Company{company}, nil).Once(),
		r.warehouses.On("AddWarehouse", ctx, mock.MatchedBy(func(w stock.Warehouse) bool {
			return w.Name() == "Van - KA01" && w.Parent() == "All Warehouses - AP" && !w.IsGroup()
		})).Return(nil).Once(),
		r.vehicles.On("Add", ctx, mock.MatchedBy(func(v *vehicle.Vehicle) bool {
			return v.ID().IsEqual(cmd.VehicleID()) && v.Warehouse() == "Van - KA01"
		})).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateVehicleCommandHandler(factoryFor[commands.VehicleUoW](r.uow))

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	r.assertExpectations(t)
}

func TestCreateVehicleCommandHandler_Handle_ReusesExistingWarehouse(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := newCreateVehicleCommand(t)
	existing, err := stock.NewWarehouse("Van - KA01", "Acme Publishers", "All Warehouses - AP", false)
	require.NoError(t, err)

	r := newRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.warehouses.On("GetWarehouse", ctx, "Van - KA01").Return(&existing, nil).Once(),
		r.vehicles.On("Add", ctx, mock.MatchedBy(func(v *vehicle.Vehicle) bool {
			return v.Warehouse() == "Van - KA01"
		})).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateVehicleCommandHandler(factoryFor[commands.VehicleUoW](r.uow))

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	r.warehouses.AssertNotCalled(t, "ListCompanies", mock.Anything)
	r.warehouses.AssertNotCalled(t, "AddWarehouse", mock.Anything, mock.Anything)
	r.assertExpectations(t)
}

func TestCreateVehicleCommandHandler_Handle_NoCompany(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := newCreateVehicleCommand(t)

	r := newRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.warehouses.On("GetWarehouse", ctx, "Van - KA01").
			Return(nil, errs.NewObjectNotFoundError("warehouse", "Van - KA01")).Once(),
		r.warehouses.On("ListCompanies", ctx).Return([]stock.Company{}, nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateVehicleCommandHandler(factoryFor[commands.VehicleUoW](r.uow))

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, stock.ErrNoCompany)
	r.vehicles.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	r.uow.AssertNotCalled(t, "Commit", mock.Anything)
	r.assertExpectations(t)
}

func TestCreateVehicleCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	factory := new(MockUoWFactory[commands.VehicleUoW])
	handler := commands.NewCreateVehicleCommandHandler(factory)

	// Act
	err := handler.Handle(t.Context(), commands.CreateVehicleCommand{})

	// Assert
	require.ErrorIs(t, err, commands.ErrCreateVehicleCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewCreateVehicleCommand_RequiresNumber(t *testing.T) {
	_, err := commands.NewCreateVehicleCommand(kernel.NewUUID(), "  ", "Van", "", "")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestProvisionVehicleWarehouseCommandHandler_Handle(t *testing.T) {
	// Arrange
	ctx := t.Context()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "KA02", "Van", "Anil", "")
	require.NoError(t, err)
	cmd, err := commands.NewProvisionVehicleWarehouseCommand(v.ID())
	require.NoError(t, err)
	company, err := stock.NewCompany("Acme Publishers", "AP", false)
	require.NoError(t, err)

	r := newRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.vehicles.On("Get", ctx, v.ID()).Return(v, nil).Once(),
		r.warehouses.On("GetWarehouse", ctx, "Van - KA02").
			Return(nil, errs.NewObjectNotFoundError("warehouse", "Van - KA02")).Once(),
		r.warehouses.On("ListCompanies", ctx).Return([]stock.Company{company}, nil).Once(),
		r.warehouses.On("AddWarehouse", ctx, mock.AnythingOfType("stock.Warehouse")).Return(nil).Once(),
		r.vehicles.On("Update", ctx, v).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewProvisionVehicleWarehouseCommandHandler(factoryFor[commands.VehicleUoW](r.uow))

	// Act
	warehouse, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Van - KA02", warehouse)
	assert.Equal(t, "Van - KA02", v.Warehouse())
	r.assertExpectations(t)
}
