package commands

import (
	"context"

	"booksamples/internal/core/domain/services"
)

// CancelDistributionCommandHandler cancels a submitted distribution and
// reverses its transfer when that is still submitted.
type CancelDistributionCommandHandler struct {
	uowFactory DistributionUoWFactory
	poster     services.StockPoster
}

func NewCancelDistributionCommandHandler(
	uowFactory DistributionUoWFactory,
	poster services.StockPoster,
) CancelDistributionCommandHandler {
	return CancelDistributionCommandHandler{
		uowFactory: uowFactory,
		poster:     poster,
	}
}

func (h CancelDistributionCommandHandler) Handle(ctx context.Context, cmd CancelDistributionCommand) error {
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

	distributions := uow.DistributionRepository()
	d, err := distributions.Get(ctx, cmd.DistributionID())
	if err != nil {
		return err
	}

	entryID, err := d.Cancel()
	if err != nil {
		return err
	}
	if err = reverseEntry(ctx, uow.StockRepository(), h.poster, entryID); err != nil {
		return err
	}

	if err = distributions.Update(ctx, d); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
