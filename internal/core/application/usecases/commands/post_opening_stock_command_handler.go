package commands

import (
	"context"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/stock"
	"booksamples/internal/core/domain/services"
)

// PostOpeningStockCommandHandler posts a Material Receipt into an existing
// warehouse.
type PostOpeningStockCommandHandler struct {
	uowFactory SetupUoWFactory
	poster     services.StockPoster
}

func NewPostOpeningStockCommandHandler(
	uowFactory SetupUoWFactory,
	poster services.StockPoster,
) PostOpeningStockCommandHandler {
	return PostOpeningStockCommandHandler{
		uowFactory: uowFactory,
		poster:     poster,
	}
}

// Handle returns the id of the submitted stock entry.
func (h PostOpeningStockCommandHandler) Handle(ctx context.Context, cmd PostOpeningStockCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.WarehouseRepository().GetWarehouse(ctx, cmd.Warehouse()); err != nil {
		return kernel.UUID{}, err
	}

	lines := make([]stock.Line, 0, len(cmd.Lines()))
	for _, l := range cmd.Lines() {
		lines = append(lines, stock.Line{ItemCode: l.ItemCode, Qty: l.Qty, TargetWarehouse: cmd.Warehouse()})
	}

	entryID, err := postEntry(ctx, uow.StockRepository(), h.poster, stock.MaterialReceipt, cmd.PostingDate(),
		stock.Reference{VoucherType: stock.VoucherOpeningStock, VoucherID: cmd.ReceiptID()}, lines)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}
	return entryID, nil
}
