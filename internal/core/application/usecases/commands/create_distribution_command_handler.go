package commands

import (
	"context"

	"booksamples/internal/core/domain/model/distribution"
	"booksamples/internal/core/domain/model/kernel"
)

// CreateDistributionCommandHandler validates and saves a draft
// distribution. Item names, class grades and subjects are copied from the
// catalog.
type CreateDistributionCommandHandler struct {
	uowFactory     DistributionUoWFactory
	fieldWarehouse string
}

func NewCreateDistributionCommandHandler(
	uowFactory DistributionUoWFactory,
	fieldWarehouse string,
) CreateDistributionCommandHandler {
	return CreateDistributionCommandHandler{
		uowFactory:     uowFactory,
		fieldWarehouse: fieldWarehouse,
	}
}

// Handle returns the shortfall warnings of the draft.
func (h CreateDistributionCommandHandler) Handle(
	ctx context.Context,
	cmd CreateDistributionCommand,
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

	header := cmd.Header()
	if _, err := uow.SchoolRepository().Get(ctx, header.SchoolID); err != nil {
		return nil, err
	}

	catalogItems, err := lookupItems(ctx, uow.CatalogRepository(), cmd.Items())
	if err != nil {
		return nil, err
	}

	items := make([]distribution.Item, 0, len(cmd.Items()))
	for _, line := range cmd.Items() {
		ci := catalogItems[line.ItemCode]
		item, itemErr := distribution.NewItem(ci.Code(), ci.Name(), ci.PrimaryClassGrade(), ci.Details().Subject,
			line.Qty, line.ExpectedReturnDate)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	d, err := distribution.NewDistribution(cmd.DistributionID(), header, items)
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

	if err = uow.DistributionRepository().Add(ctx, d); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return warnings, nil
}

// distributionValidationContext loads the linked loading and vehicle and
// the on-hand quantity of every item in each candidate source warehouse.
func distributionValidationContext(
	ctx context.Context,
	uow DistributionUoW,
	d *distribution.Distribution,
	fieldWarehouse string,
) (distribution.ValidationContext, error) {
	vc := distribution.ValidationContext{FieldWarehouse: fieldWarehouse}

	if d.LoadingID() != nil {
		l, err := uow.LoadingRepository().Get(ctx, *d.LoadingID())
		if err != nil {
			return vc, err
		}
		vehicleID := l.VehicleID()
		vc.LoadingVehicleID = &vehicleID
		vc.LoadingWarehouse = l.TargetWarehouse()
	}

	if d.VehicleID() != nil {
		v, err := uow.VehicleRepository().Get(ctx, *d.VehicleID())
		if err != nil {
			return vc, err
		}
		vc.VehicleWarehouse = v.Warehouse()
	}

	codes := make([]string, 0, len(d.Items()))
	for _, item := range d.Items() {
		codes = append(codes, item.ItemCode())
	}

	onHand, err := uow.StockRepository().GetBalances(ctx,
		onHandKeys(codes, d.SourceWarehouse(), vc.LoadingWarehouse, vc.VehicleWarehouse))
	if err != nil {
		return vc, err
	}
	vc.OnHand = onHand
	return vc, nil
}
