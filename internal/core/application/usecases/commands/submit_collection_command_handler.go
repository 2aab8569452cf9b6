package commands

import (
	"context"

	"booksamples/internal/core/domain/model/collection"
	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/stock"
	"booksamples/internal/core/domain/services"
)

// SubmitCollectionCommandHandler posts a Material Transfer for good books
// and a Material Issue for damaged and lost books, then adds the collected
// quantities to the distribution. All writes share one transaction; a
// concurrent change to the distribution fails the submit with
// errs.ErrVersionIsInvalid.
type SubmitCollectionCommandHandler struct {
	uowFactory     CollectionUoWFactory
	poster         services.StockPoster
	fieldWarehouse string
}

func NewSubmitCollectionCommandHandler(
	uowFactory CollectionUoWFactory,
	poster services.StockPoster,
	fieldWarehouse string,
) SubmitCollectionCommandHandler {
	return SubmitCollectionCommandHandler{
		uowFactory:     uowFactory,
		poster:         poster,
		fieldWarehouse: fieldWarehouse,
	}
}

func (h SubmitCollectionCommandHandler) Handle(ctx context.Context, cmd SubmitCollectionCommand) error {
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

	vc, err := collectionValidationContext(ctx, uow, c, nil, h.fieldWarehouse)
	if err != nil {
		return err
	}
	if err = c.ValidateDraft(vc); err != nil {
		return err
	}

	returnEntryID, err := h.post(ctx, uow, c, stock.MaterialTransfer, c.ReturnLines())
	if err != nil {
		return err
	}
	writeOffEntryID, err := h.post(ctx, uow, c, stock.MaterialIssue, c.WriteOffLines())
	if err != nil {
		return err
	}

	if err = c.Submit(returnEntryID, writeOffEntryID); err != nil {
		return err
	}

	if d := vc.Distribution; d != nil {
		if err = d.UpdateCollection(c.DistributionDeltas()); err != nil {
			return err
		}
		if err = uow.DistributionRepository().Update(ctx, d); err != nil {
			return err
		}
	}

	if err = collections.Update(ctx, c); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

// post returns nil without posting when there are no lines.
func (h SubmitCollectionCommandHandler) post(
	ctx context.Context,
	uow CollectionUoW,
	c *collection.Collection,
	entryType stock.EntryType,
	lines []stock.Line,
) (*kernel.UUID, error) {
	if len(lines) == 0 {
		return nil, nil //nolint:nilnil // no entry is a valid outcome
	}

	id, err := postEntry(ctx, uow.StockRepository(), h.poster, entryType, c.CollectionDate(),
		stock.Reference{VoucherType: stock.VoucherCollection, VoucherID: c.ID()}, lines)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
