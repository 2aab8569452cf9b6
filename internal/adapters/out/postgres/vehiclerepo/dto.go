// Package vehiclerepo persists vehicles.
package vehiclerepo

import (
	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO is the vehicles table row. Vehicle numbers are not unique:
// two vehicles with the same number share one warehouse.
type VehicleDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number      string    `gorm:"type:varchar(64);not null;index"`
	VehicleType string    `gorm:"type:varchar(64)"`
	DriverName  string    `gorm:"type:varchar(255)"`
	DriverPhone string    `gorm:"type:varchar(32)"`
	Warehouse   string    `gorm:"type:varchar(255)"`
}

func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(v *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:          v.ID().Bytes(),
		Number:      v.Number(),
		VehicleType: v.VehicleType(),
		DriverName:  v.DriverName(),
		DriverPhone: v.DriverPhone(),
		Warehouse:   v.Warehouse(),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return vehicle.RestoreVehicle(id, dto.Number, dto.VehicleType, dto.DriverName, dto.DriverPhone, dto.Warehouse)
}
