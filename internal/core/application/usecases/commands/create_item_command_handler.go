package commands

import (
	"context"
	"fmt"

	"booksamples/internal/core/domain/model/catalog"
	"booksamples/internal/pkg/errs"
)

// CreateItemCommandHandler saves a catalog item after checking that its
// class grades are known.
type CreateItemCommandHandler struct {
	uowFactory SetupUoWFactory
}

func NewCreateItemCommandHandler(uowFactory SetupUoWFactory) CreateItemCommandHandler {
	return CreateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateItemCommandHandler) Handle(ctx context.Context, cmd CreateItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := catalog.NewItem(cmd.Code(), cmd.Name(), cmd.StockUOM(), cmd.Details())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalogRepo := uow.CatalogRepository()
	if len(item.Details().ClassGrades) > 0 {
		grades, listErr := catalogRepo.ListClassGrades(ctx)
		if listErr != nil {
			return listErr
		}
		known := make(map[string]struct{}, len(grades))
		for _, g := range grades {
			known[g.Name()] = struct{}{}
		}
		for _, g := range item.Details().ClassGrades {
			if _, ok := known[g]; !ok {
				return errs.NewValueIsInvalidErrorWithCause("class grade", fmt.Errorf("%q does not exist", g))
			}
		}
	}

	if err = catalogRepo.AddItem(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
