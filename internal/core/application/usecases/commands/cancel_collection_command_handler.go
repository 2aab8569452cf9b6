package commands

import (
	"context"

	"booksamples/internal/core/domain/services"
)

// CancelCollectionCommandHandler cancels a submitted collection, reverses
// both of its stock entries and takes the quantities back off the
// distribution.
type CancelCollectionCommandHandler struct {
	uowFactory CollectionUoWFactory
	poster     services.StockPoster
}

func NewCancelCollectionCommandHandler(
	uowFactory CollectionUoWFactory,
	poster services.StockPoster,
) CancelCollectionCommandHandler {
	return CancelCollectionCommandHandler{
		uowFactory: uowFactory,
		poster:     poster,
	}
}

func (h CancelCollectionCommandHandler) Handle(ctx context.Context, cmd CancelCollectionCommand) error {
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

	returnEntryID, writeOffEntryID, err := c.Cancel()
	if err != nil {
		return err
	}

	stockRepo := uow.StockRepository()
	if err = reverseEntry(ctx, stockRepo, h.poster, returnEntryID); err != nil {
		return err
	}
	if err = reverseEntry(ctx, stockRepo, h.poster, writeOffEntryID); err != nil {
		return err
	}

	if c.DistributionID() != nil {
		distributions := uow.DistributionRepository()
		d, getErr := distributions.Get(ctx, *c.DistributionID())
		if getErr != nil {
			return getErr
		}
		if err = d.UpdateCollection(c.ReversalDeltas()); err != nil {
			return err
		}
		if err = distributions.Update(ctx, d); err != nil {
			return err
		}
	}

	if err = collections.Update(ctx, c); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
