package commands

import (
	"context"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/loading"
	"booksamples/internal/core/domain/model/stock"
	"booksamples/internal/core/domain/services"
)

// SubmitLoadingCommandHandler re-validates a draft loading, posts one
// Material Transfer from the source warehouse into the vehicle and marks
// the loading Loaded, all in one transaction.
type SubmitLoadingCommandHandler struct {
	uowFactory LoadingUoWFactory
	poster     services.StockPoster
}

func NewSubmitLoadingCommandHandler(uowFactory LoadingUoWFactory, poster services.StockPoster) SubmitLoadingCommandHandler {
	return SubmitLoadingCommandHandler{
		uowFactory: uowFactory,
		poster:     poster,
	}
}

func (h SubmitLoadingCommandHandler) Handle(ctx context.Context, cmd SubmitLoadingCommand) ([]kernel.Warning, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loadings := uow.LoadingRepository()
	l, err := loadings.Get(ctx, cmd.LoadingID())
	if err != nil {
		return nil, err
	}

	v, err := uow.VehicleRepository().Get(ctx, l.VehicleID())
	if err != nil {
		return nil, err
	}

	stockRepo := uow.StockRepository()
	balances, err := stockRepo.GetBalances(ctx, onHandKeys(loadingItemCodes(l), l.SourceWarehouse()))
	if err != nil {
		return nil, err
	}

	warnings, err := l.ValidateDraft(v.Warehouse(), balances)
	if err != nil {
		return nil, err
	}

	entryID, err := postEntry(ctx, stockRepo, h.poster, stock.MaterialTransfer, l.LoadingDate(),
		stock.Reference{VoucherType: stock.VoucherLoading, VoucherID: l.ID()}, l.TransferLines())
	if err != nil {
		return nil, err
	}

	if err = l.Submit(entryID); err != nil {
		return nil, err
	}
	if err = loadings.Update(ctx, l); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return warnings, nil
}

func loadingItemCodes(l *loading.Loading) []string {
	codes := make([]string, 0, len(l.Items()))
	for _, item := range l.Items() {
		codes = append(codes, item.ItemCode())
	}
	return codes
}
