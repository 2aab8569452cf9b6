package commands_test

import (
	"testing"

	"booksamples/internal/core/application/usecases/commands"
	"booksamples/internal/core/domain/model/catalog"
	"booksamples/internal/core/domain/model/stock"
	"booksamples/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInstallCommandHandler_Handle_FreshDatabase(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewInstallCommand("", "Acme Publishers", "AP")
	require.NoError(t, err)

	r := newRepos()
	r.uow.On("Begin", ctx).Return(nil).Once()
	r.catalog.On("ListClassGrades", ctx).Return([]catalog.ClassGrade{}, nil).Once()
	r.catalog.On("AddClassGrade", ctx, mock.AnythingOfType("catalog.ClassGrade")).Return(nil).Times(15)
	r.warehouses.On("ListCompanies", ctx).Return([]stock.Company{}, nil).Once()
	r.warehouses.On("AddCompany", ctx, mock.MatchedBy(func(c stock.Company) bool {
		return c.Name() == "Acme Publishers" && c.IsDefault()
	})).Return(nil).Once()
	for _, name := range []string{"All Warehouses - AP", "Samples in Field"} {
		r.warehouses.On("GetWarehouse", ctx, name).Return(nil, errs.NewObjectNotFoundError("warehouse", name)).Once()
	}
	r.warehouses.On("AddWarehouse", ctx, mock.MatchedBy(func(w stock.Warehouse) bool {
		return w.Name() == "All Warehouses - AP" && w.IsGroup() && w.Parent() == ""
	})).Return(nil).Once()
	r.warehouses.On("AddWarehouse", ctx, mock.MatchedBy(func(w stock.Warehouse) bool {
		return w.Name() == "Samples in Field" && !w.IsGroup() && w.Parent() == "All Warehouses - AP"
	})).Return(nil).Once()
	r.uow.On("Commit", ctx).Return(nil).Once()
	r.uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewInstallCommandHandler(factoryFor[commands.SetupUoW](r.uow))

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Len(t, result.ClassGrades, 15)
	assert.Equal(t, "Nursery", result.ClassGrades[0])
	assert.Equal(t, "Acme Publishers", result.Company)
	assert.Equal(t, []string{"All Warehouses - AP", "Samples in Field"}, result.Warehouses)
	r.assertExpectations(t)
}

func TestInstallCommandHandler_Handle_Idempotent(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewInstallCommand("", "", "")
	require.NoError(t, err)
	company, err := stock.NewCompany("Acme Publishers", "AP", true)
	require.NoError(t, err)
	root, err := stock.NewWarehouse("All Warehouses - AP", company.Name(), "", true)
	require.NoError(t, err)
	field, err := stock.NewWarehouse("Samples in Field", company.Name(), root.Name(), false)
	require.NoError(t, err)

	r := newRepos()
	r.uow.On("Begin", ctx).Return(nil).Once()
	r.catalog.On("ListClassGrades", ctx).Return(catalog.DefaultClassGrades(), nil).Once()
	r.warehouses.On("ListCompanies", ctx).Return([]stock.Company{company}, nil).Once()
	r.warehouses.On("GetWarehouse", ctx, root.Name()).Return(&root, nil).Once()
	r.warehouses.On("GetWarehouse", ctx, field.Name()).Return(&field, nil).Once()
	r.uow.On("Commit", ctx).Return(nil).Once()
	r.uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewInstallCommandHandler(factoryFor[commands.SetupUoW](r.uow))

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, result.ClassGrades)
	assert.Empty(t, result.Warehouses)
	assert.Empty(t, result.Company)
	r.catalog.AssertNotCalled(t, "AddClassGrade", mock.Anything, mock.Anything)
	r.warehouses.AssertNotCalled(t, "AddWarehouse", mock.Anything, mock.Anything)
	r.assertExpectations(t)
}

func TestInstallCommandHandler_Handle_NoCompany(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewInstallCommand("", "", "")
	require.NoError(t, err)

	r := newRepos()
	r.uow.On("Begin", ctx).Return(nil).Once()
	r.catalog.On("ListClassGrades", ctx).Return(catalog.DefaultClassGrades(), nil).Once()
	r.warehouses.On("ListCompanies", ctx).Return([]stock.Company{}, nil).Once()
	r.uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewInstallCommandHandler(factoryFor[commands.SetupUoW](r.uow))

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, stock.ErrNoCompany)
	r.uow.AssertNotCalled(t, "Commit", mock.Anything)
	r.assertExpectations(t)
}

func TestNewInstallCommand_Defaults(t *testing.T) {
	cmd, err := commands.NewInstallCommand("  ", "", "")
	require.NoError(t, err)
	assert.Equal(t, stock.DefaultFieldWarehouseName, cmd.FieldWarehouse())

	_, err = commands.NewInstallCommand("", "Acme Publishers", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
