package commands

import (
	"context"

	"booksamples/internal/core/domain/model/school"
)

// CreateSchoolCustomerCommandHandler creates a company customer named after
// the school. Group and territory come from configuration; empty values fall
// back to "All Customer Groups" and "All Territories".
type CreateSchoolCustomerCommandHandler struct {
	uowFactory    SchoolUoWFactory
	customerGroup string
	territory     string
}

func NewCreateSchoolCustomerCommandHandler(
	uowFactory SchoolUoWFactory,
	customerGroup, territory string,
) CreateSchoolCustomerCommandHandler {
	return CreateSchoolCustomerCommandHandler{
		uowFactory:    uowFactory,
		customerGroup: customerGroup,
		territory:     territory,
	}
}

// Handle fails with school.ErrCustomerAlreadyLinked when the school already
// has a customer.
func (h CreateSchoolCustomerCommandHandler) Handle(ctx context.Context, cmd CreateSchoolCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	schools := uow.SchoolRepository()
	s, err := schools.Get(ctx, cmd.SchoolID())
	if err != nil {
		return err
	}
	if s.HasCustomer() {
		return school.ErrCustomerAlreadyLinked
	}

	customer, err := school.NewCustomerForSchool(cmd.CustomerID(), s, h.customerGroup, h.territory)
	if err != nil {
		return err
	}
	if err = s.LinkCustomer(customer.ID()); err != nil {
		return err
	}

	if err = schools.AddCustomer(ctx, customer); err != nil {
		return err
	}
	if err = schools.Update(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
