package school

import (
	"errors"
	"fmt"
	"strings"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/pkg/errs"
)

var (
	ErrSchoolIsNotConstructed = errors.New("School must be created via NewSchool constructor")
	ErrCustomerAlreadyLinked  = errors.New("customer already linked to this school")
)

// Contact holds the reachability fields of a school.
type Contact struct {
	Principal string
	Phone     string
	Mobile    string
	Email     string
}

// Address locates a school. AreaZone groups schools for route planning and
// is a filter in the school ledger and pending collection reports.
type Address struct {
	Line     string
	City     string
	AreaZone string
}

// School receives samples for evaluation. It may be linked to a customer
// once it starts ordering.
type School struct {
	id         kernel.UUID
	name       string
	board      string
	contact    Contact
	address    Address
	customerID *kernel.UUID

	isConstructed bool
}

// NewSchool creates a school without a customer link.
func NewSchool(id kernel.UUID, name, board string, contact Contact, address Address) (*School, error) {
	return RestoreSchool(id, name, board, contact, address, nil)
}

// RestoreSchool rebuilds a school from persistence.
func RestoreSchool(
	id kernel.UUID,
	name, board string,
	contact Contact,
	address Address,
	customerID *kernel.UUID,
) (*School, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewValueIsRequiredError("school name")
	}
	if contact.Email != "" && !strings.Contains(contact.Email, "@") {
		return nil, errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", contact.Email))
	}

	return &School{
		id:            id,
		name:          name,
		board:         board,
		contact:       contact,
		address:       address,
		customerID:    customerID,
		isConstructed: true,
	}, nil
}

// Validate ensures the school was created through its constructor.
func (s *School) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSchoolIsNotConstructed
	}
	return nil
}

func (s *School) ID() kernel.UUID { return s.id }
func (s *School) Name() string { return s.name }
func (s *School) Board() string { return s.board }
func (s *School) Contact() Contact { return s.contact }
func (s *School) Address() Address { return s.address }
func (s *School) CustomerID() *kernel.UUID { return s.customerID }
func (s *School) HasCustomer() bool { return s.customerID != nil }

// ContactWarnings returns a warning when the school cannot be reached by
// phone, mobile or email.
func (s *School) ContactWarnings() []kernel.Warning {
	if s.contact.Phone == "" && s.contact.Mobile == "" && s.contact.Email == "" {
		return []kernel.Warning{{Message: "Please add at least one contact method (Phone, Mobile, or Email)"}}
	}
	return nil
}

// LinkCustomer records the customer created for this school. A school is
// linked at most once.
func (s *School) LinkCustomer(customerID kernel.UUID) error {
	if s.customerID != nil {
		return ErrCustomerAlreadyLinked
	}
	if err := customerID.Validate(); err != nil {
		return err
	}
	s.customerID = &customerID
	return nil
}
