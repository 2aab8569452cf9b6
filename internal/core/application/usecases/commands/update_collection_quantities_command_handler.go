package commands

import (
	"context"
)

// UpdateCollectionQuantitiesCommandHandler edits a draft collection and
// validates it again before saving.
type UpdateCollectionQuantitiesCommandHandler struct {
	uowFactory     CollectionUoWFactory
	fieldWarehouse string
}

func NewUpdateCollectionQuantitiesCommandHandler(
	uowFactory CollectionUoWFactory,
	fieldWarehouse string,
) UpdateCollectionQuantitiesCommandHandler {
	return UpdateCollectionQuantitiesCommandHandler{
		uowFactory:     uowFactory,
		fieldWarehouse: fieldWarehouse,
	}
}

func (h UpdateCollectionQuantitiesCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateCollectionQuantitiesCommand,
) error {
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

	collections := uow.CollectionRepository()
	c, err := collections.Get(ctx, cmd.CollectionID())
	if err != nil {
		return err
	}

	if err = c.UpdateQuantities(cmd.Updates()); err != nil {
		return err
	}

	vc, err := collectionValidationContext(ctx, uow, c, nil, h.fieldWarehouse)
	if err != nil {
		return err
	}
	if err = c.ValidateDraft(vc); err != nil {
		return err
	}

	if err = collections.Update(ctx, c); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
