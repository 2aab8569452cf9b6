package commands

import (
	"context"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/loading"
)

// CreateLoadingCommandHandler validates and saves a draft loading. Item
// names and class grades are copied from the catalog.
type CreateLoadingCommandHandler struct {
	uowFactory LoadingUoWFactory
}

func NewCreateLoadingCommandHandler(uowFactory LoadingUoWFactory) CreateLoadingCommandHandler {
	return CreateLoadingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the shortfall warnings of the draft.
func (h CreateLoadingCommandHandler) Handle(ctx context.Context, cmd CreateLoadingCommand) ([]kernel.Warning, error) {
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

	v, err := uow.VehicleRepository().Get(ctx, cmd.VehicleID())
	if err != nil {
		return nil, err
	}

	catalogItems, err := lookupItems(ctx, uow.CatalogRepository(), cmd.Items())
	if err != nil {
		return nil, err
	}

	items := make([]loading.Item, 0, len(cmd.Items()))
	for _, line := range cmd.Items() {
		ci := catalogItems[line.ItemCode]
		item, itemErr := loading.NewItem(ci.Code(), ci.Name(), ci.PrimaryClassGrade(), line.Qty)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	driverName := cmd.DriverName()
	if driverName == "" {
		driverName = v.DriverName()
	}

	l, err := loading.NewLoading(cmd.LoadingID(), v.ID(), driverName, cmd.LoadingDate(),
		cmd.SourceWarehouse(), cmd.TargetWarehouse(), items)
	if err != nil {
		return nil, err
	}

	balances, err := uow.StockRepository().GetBalances(ctx, onHandKeys(itemCodes(cmd.Items()), cmd.SourceWarehouse()))
	if err != nil {
		return nil, err
	}

	warnings, err := l.ValidateDraft(v.Warehouse(), balances)
	if err != nil {
		return nil, err
	}

	if err = uow.LoadingRepository().Add(ctx, l); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return warnings, nil
}
