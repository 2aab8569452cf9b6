package commands

import (
	"context"

	"booksamples/internal/core/domain/services"
)

// CancelLoadingCommandHandler cancels a submitted loading and reverses its
// transfer when that is still submitted.
type CancelLoadingCommandHandler struct {
	uowFactory LoadingUoWFactory
	poster     services.StockPoster
}

func NewCancelLoadingCommandHandler(uowFactory LoadingUoWFactory, poster services.StockPoster) CancelLoadingCommandHandler {
	return CancelLoadingCommandHandler{
		uowFactory: uowFactory,
		poster:     poster,
	}
}

func (h CancelLoadingCommandHandler) Handle(ctx context.Context, cmd CancelLoadingCommand) error {
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

	loadings := uow.LoadingRepository()
	l, err := loadings.Get(ctx, cmd.LoadingID())
	if err != nil {
		return err
	}

	entryID, err := l.Cancel()
	if err != nil {
		return err
	}
	if err = reverseEntry(ctx, uow.StockRepository(), h.poster, entryID); err != nil {
		return err
	}

	if err = loadings.Update(ctx, l); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
