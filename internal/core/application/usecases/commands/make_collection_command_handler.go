package commands

import (
	"context"

	"booksamples/internal/core/domain/model/collection"
)

// MakeCollectionCommandHandler builds and saves a draft collection from a
// submitted distribution.
type MakeCollectionCommandHandler struct {
	uowFactory     CollectionUoWFactory
	fieldWarehouse string
}

func NewMakeCollectionCommandHandler(uowFactory CollectionUoWFactory, fieldWarehouse string) MakeCollectionCommandHandler {
	return MakeCollectionCommandHandler{
		uowFactory:     uowFactory,
		fieldWarehouse: fieldWarehouse,
	}
}

func (h MakeCollectionCommandHandler) Handle(ctx context.Context, cmd MakeCollectionCommand) error {
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

	d, err := uow.DistributionRepository().Get(ctx, cmd.DistributionID())
	if err != nil {
		return err
	}

	c, err := collection.NewFromDistribution(cmd.CollectionID(), d, cmd.CollectionDate())
	if err != nil {
		return err
	}
	if cmd.TargetWarehouse() != "" {
		if err = c.SetTargetWarehouse(cmd.TargetWarehouse()); err != nil {
			return err
		}
	}

	vc, err := collectionValidationContext(ctx, uow, c, d, h.fieldWarehouse)
	if err != nil {
		return err
	}
	if err = c.ValidateDraft(vc); err != nil {
		return err
	}

	if err = uow.CollectionRepository().Add(ctx, c); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
