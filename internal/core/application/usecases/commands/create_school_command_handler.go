package commands

import (
	"context"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/school"
)

// CreateSchoolCommandHandler saves a new school. A school without any
// contact method is saved with a warning.
type CreateSchoolCommandHandler struct {
	uowFactory SchoolUoWFactory
}

func NewCreateSchoolCommandHandler(uowFactory SchoolUoWFactory) CreateSchoolCommandHandler {
	return CreateSchoolCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateSchoolCommandHandler) Handle(ctx context.Context, cmd CreateSchoolCommand) ([]kernel.Warning, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	s, err := school.NewSchool(cmd.SchoolID(), cmd.Name(), cmd.Board(), cmd.Contact(), cmd.Address())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.SchoolRepository().Add(ctx, s); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s.ContactWarnings(), nil
}
