package commands

import (
	"errors"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/pkg/guard"
)

var ErrCreateSchoolCustomerCommandIsNotConstructed = errors.New(
	"CreateSchoolCustomerCommand must be created via NewCreateSchoolCustomerCommand constructor",
)

// CreateSchoolCustomerCommand creates the customer record of a school and
// links it. A school gets at most one customer.
type CreateSchoolCustomerCommand struct {
	schoolID   kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateSchoolCustomerCommand(schoolID, customerID kernel.UUID) (CreateSchoolCustomerCommand, error) {
	if err := errors.Join(schoolID.Validate(), customerID.Validate()); err != nil {
		return CreateSchoolCustomerCommand{}, err
	}
	return CreateSchoolCustomerCommand{
		schoolID:   schoolID,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateSchoolCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateSchoolCustomerCommandIsNotConstructed)
}

func (c CreateSchoolCustomerCommand) SchoolID() kernel.UUID {
	return c.schoolID
}

func (c CreateSchoolCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}
