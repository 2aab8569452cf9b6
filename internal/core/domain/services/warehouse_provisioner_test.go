package services_test

import (
	"testing"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/stock"
	"booksamples/internal/core/domain/model/vehicle"
	"booksamples/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVan(t *testing.T, number string) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), number, "Van", "Ravi", "")
	require.NoError(t, err)
	return v
}

func TestWarehouseProvisioner_Provision(t *testing.T) {
	acme, err := stock.NewCompany("Acme Books", "AB", false)
	require.NoError(t, err)
	primary, err := stock.NewCompany("Primary Books", "PB", true)
	require.NoError(t, err)
	provisioner := services.NewWarehouseProvisioner()

	t.Run("creates under default company root group", func(t *testing.T) {
		v := newVan(t, "KA-01-1234")

		created, err := provisioner.Provision(v, nil, []stock.Company{acme, primary})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "Van - KA-01-1234", created.Name())
		assert.Equal(t, "Primary Books", created.Company())
		assert.Equal(t, "All Warehouses - PB", created.Parent())
		assert.False(t, created.IsGroup())
		assert.Equal(t, "Van - KA-01-1234", v.Warehouse())
	})

	t.Run("falls back to first company", func(t *testing.T) {
		created, err := provisioner.Provision(newVan(t, "KA-02"), nil, []stock.Company{acme})

		require.NoError(t, err)
		assert.Equal(t, "All Warehouses - AB", created.Parent())
	})

	t.Run("reuses existing warehouse", func(t *testing.T) {
		existing, err := stock.NewWarehouse("Van - KA-01-1234", "Primary Books", "All Warehouses - PB", false)
		require.NoError(t, err)
		v := newVan(t, "KA-01-1234")

		created, err := provisioner.Provision(v, &existing, nil)

		require.NoError(t, err)
		assert.Nil(t, created)
		assert.Equal(t, "Van - KA-01-1234", v.Warehouse())
	})

	t.Run("vehicle already provisioned", func(t *testing.T) {
		v, err := vehicle.RestoreVehicle(kernel.NewUUID(), "KA-03", "Van", "", "", "Van - Old")
		require.NoError(t, err)

		created, err := provisioner.Provision(v, nil, nil)

		require.NoError(t, err)
		assert.Nil(t, created)
		assert.Equal(t, "Van - Old", v.Warehouse())
	})

	t.Run("no company", func(t *testing.T) {
		v := newVan(t, "KA-04")

		_, err := provisioner.Provision(v, nil, nil)

		require.ErrorIs(t, err, stock.ErrNoCompany)
		assert.False(t, v.HasWarehouse())
	})
}
