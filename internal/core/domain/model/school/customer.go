package school

import (
	"errors"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/pkg/errs"
)

// Defaults applied when configuration leaves the customer group or territory empty.
const (
	DefaultCustomerGroup = "All Customer Groups"
	DefaultTerritory     = "All Territories"
	CustomerTypeCompany  = "Company"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the billing counterpart of a school.
type Customer struct {
	id            kernel.UUID
	name          string
	customerType  string
	group         string
	territory     string
	isConstructed bool
}

// NewCustomerForSchool creates a company customer named after the school.
func NewCustomerForSchool(id kernel.UUID, s *School, group, territory string) (*Customer, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if group == "" {
		group = DefaultCustomerGroup
	}
	if territory == "" {
		territory = DefaultTerritory
	}
	return RestoreCustomer(id, s.Name(), CustomerTypeCompany, group, territory)
}

// RestoreCustomer rebuilds a customer from persistence.
func RestoreCustomer(id kernel.UUID, name, customerType, group, territory string) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("customer name")
	}
	return &Customer{
		id:            id,
		name:          name,
		customerType:  customerType,
		group:         group,
		territory:     territory,
		isConstructed: true,
	}, nil
}

// Validate ensures the customer was created through its constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() kernel.UUID { return c.id }
func (c *Customer) Name() string { return c.name }
func (c *Customer) CustomerType() string { return c.customerType }
func (c *Customer) Group() string { return c.group }
func (c *Customer) Territory() string { return c.territory }
