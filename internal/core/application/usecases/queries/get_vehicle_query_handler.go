package queries

import (
	"context"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetVehicleQueryHandler struct {
	db *gorm.DB
}

func NewGetVehicleQueryHandler(db *gorm.DB) GetVehicleQueryHandler {
	return GetVehicleQueryHandler{db: db}
}

func (h GetVehicleQueryHandler) Handle(ctx context.Context, query GetVehicleQuery) (GetVehicleQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetVehicleQueryResponse{}, err
	}

	var rows []struct {
		Number      string
		VehicleType string
		DriverName  string
		DriverPhone string
		Warehouse   string
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT number, vehicle_type, driver_name, driver_phone, warehouse
		FROM vehicles
		WHERE id = ?
	`, query.VehicleID().Bytes()).Scan(&rows).Error
	if err != nil {
		return GetVehicleQueryResponse{}, err
	}
	if len(rows) == 0 {
		return GetVehicleQueryResponse{}, errs.NewObjectNotFoundError("vehicle", query.VehicleID())
	}

	row := rows[0]
	return GetVehicleQueryResponse{
		ID:          query.VehicleID(),
		Number:      row.Number,
		VehicleType: row.VehicleType,
		DriverName:  row.DriverName,
		DriverPhone: row.DriverPhone,
		Warehouse:   row.Warehouse,
	}, nil
}

// vehicleWarehouse returns the warehouse linked to a vehicle, empty when
// none was provisioned yet.
func vehicleWarehouse(ctx context.Context, db *gorm.DB, vehicleID kernel.UUID) (string, error) {
	var vehicles []struct{ Warehouse string }
	err := db.WithContext(ctx).Raw(`SELECT warehouse FROM vehicles WHERE id = ?`, vehicleID.Bytes()).
		Scan(&vehicles).Error
	if err != nil {
		return "", err
	}
	if len(vehicles) == 0 {
		return "", errs.NewObjectNotFoundError("vehicle", vehicleID)
	}
	return vehicles[0].Warehouse, nil
}
