package commands

import (
	"context"

	"booksamples/internal/core/domain/model/loading"
)

// UpdateLoadingStatusCommandHandler moves a submitted loading between
// Loaded, In Transit and Returned. Any other status fails with
// loading.ErrInvalidLoadingStatus and nothing is saved.
type UpdateLoadingStatusCommandHandler struct {
	uowFactory LoadingUoWFactory
}

func NewUpdateLoadingStatusCommandHandler(uowFactory LoadingUoWFactory) UpdateLoadingStatusCommandHandler {
	return UpdateLoadingStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateLoadingStatusCommandHandler) Handle(ctx context.Context, cmd UpdateLoadingStatusCommand) error {
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

	if err = l.UpdateStatus(loading.ParseStatus(cmd.Status())); err != nil {
		return err
	}

	if err = loadings.Update(ctx, l); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
