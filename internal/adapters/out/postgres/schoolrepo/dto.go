// Package schoolrepo persists schools and their customers.
package schoolrepo

import (
	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/school"

	"github.com/google/uuid"
)

type SchoolDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name       string     `gorm:"type:varchar(255);not null;index"`
	Board      string     `gorm:"type:varchar(64)"`
	Principal  string     `gorm:"type:varchar(255)"`
	Phone      string     `gorm:"type:varchar(32)"`
	Mobile     string     `gorm:"type:varchar(32)"`
	Email      string     `gorm:"type:varchar(255)"`
	Address    string     `gorm:"type:text"`
	City       string     `gorm:"type:varchar(140)"`
	AreaZone   string     `gorm:"type:varchar(140);index"`
	CustomerID *uuid.UUID `gorm:"type:uuid"`
}

func (SchoolDTO) TableName() string {
	return "schools"
}

type CustomerDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	CustomerType string    `gorm:"type:varchar(32)"`
	Group        string    `gorm:"column:customer_group;type:varchar(140)"`
	Territory    string    `gorm:"type:varchar(140)"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(s *school.School) SchoolDTO {
	contact, address := s.Contact(), s.Address()
	return SchoolDTO{
		ID:         s.ID().Bytes(),
		Name:       s.Name(),
		Board:      s.Board(),
		Principal:  contact.Principal,
		Phone:      contact.Phone,
		Mobile:     contact.Mobile,
		Email:      contact.Email,
		Address:    address.Line,
		City:       address.City,
		AreaZone:   address.AreaZone,
		CustomerID: kernel.UUIDPtrToBytes(s.CustomerID()),
	}
}

func toDomain(dto SchoolDTO) (*school.School, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDPtrFromBytes(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	return school.RestoreSchool(id, dto.Name, dto.Board,
		school.Contact{Principal: dto.Principal, Phone: dto.Phone, Mobile: dto.Mobile, Email: dto.Email},
		school.Address{Line: dto.Address, City: dto.City, AreaZone: dto.AreaZone},
		customerID)
}

func customerFromDomain(c *school.Customer) CustomerDTO {
	return CustomerDTO{
		ID:           c.ID().Bytes(),
		Name:         c.Name(),
		CustomerType: c.CustomerType(),
		Group:        c.Group(),
		Territory:    c.Territory(),
	}
}
