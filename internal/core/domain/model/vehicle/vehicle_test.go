package vehicle_test

import (
	"testing"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/vehicle"
	"booksamples/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVehicle(t *testing.T) {
	v, err := vehicle.NewVehicle(kernel.NewUUID(), " KA01AB1234 ", "Van", "Ravi", "98450")

	require.NoError(t, err)
	require.NoError(t, v.Validate())
	assert.Equal(t, "KA01AB1234", v.Number())
	assert.Equal(t, "Van - KA01AB1234", v.WarehouseName())
	assert.False(t, v.HasWarehouse())

	_, err = v.RequireWarehouse()
	require.ErrorIs(t, err, vehicle.ErrVehicleHasNoWarehouse)
	assert.Contains(t, err.Error(), "KA01AB1234")
}

func TestNewVehicle_Invalid(t *testing.T) {
	_, err := vehicle.NewVehicle(kernel.NewUUID(), "  ", "", "", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = vehicle.NewVehicle(kernel.UUID{}, "KA01", "", "", "")
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestVehicle_AssignWarehouse(t *testing.T) {
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "KA01", "", "", "")
	require.NoError(t, err)

	require.ErrorIs(t, v.AssignWarehouse(""), errs.ErrValueIsRequired)
	require.NoError(t, v.AssignWarehouse("Van - KA01"))
	require.NoError(t, v.AssignWarehouse("Some Other"))

	wh, err := v.RequireWarehouse()
	require.NoError(t, err)
	assert.Equal(t, "Van - KA01", wh)
}

func TestVehicle_ZeroValue(t *testing.T) {
	require.ErrorIs(t, (&vehicle.Vehicle{}).Validate(), vehicle.ErrVehicleIsNotConstructed)
}
