package commands

import (
	"context"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/stock"
	"booksamples/internal/core/domain/services"
)

// SubmitDistributionCommandHandler re-validates a draft distribution, posts
// its Material Transfer and marks it Distributed. The distribution is saved
// with its version checked, so a concurrent change makes the submit fail
// with errs.ErrVersionIsInvalid.
type SubmitDistributionCommandHandler struct {
	uowFactory     DistributionUoWFactory
	poster         services.StockPoster
	fieldWarehouse string
}

func NewSubmitDistributionCommandHandler(
	uowFactory DistributionUoWFactory,
	poster services.StockPoster,
	fieldWarehouse string,
) SubmitDistributionCommandHandler {
	return SubmitDistributionCommandHandler{
		uowFactory:     uowFactory,
		poster:         poster,
		fieldWarehouse: fieldWarehouse,
	}
}

func (h SubmitDistributionCommandHandler) Handle(
	ctx context.Context,
	cmd SubmitDistributionCommand,
) ([]kernel.Warning, error) {
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

	distributions := uow.DistributionRepository()
	d, err := distributions.Get(ctx, cmd.DistributionID())
	if err != nil {
		return nil, err
	}

	vc, err := distributionValidationContext(ctx, uow, d, h.fieldWarehouse)
	if err != nil {
		return nil, err
	}

	warnings, err := d.ValidateDraft(vc)
	if err != nil {
		return nil, err
	}

	entryID, err := postEntry(ctx, uow.StockRepository(), h.poster, stock.MaterialTransfer, d.DistributionDate(),
		stock.Reference{VoucherType: stock.VoucherDistribution, VoucherID: d.ID()}, d.TransferLines())
	if err != nil {
		return nil, err
	}

	if err = d.Submit(entryID); err != nil {
		return nil, err
	}
	if err = distributions.Update(ctx, d); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return warnings, nil
}
