package commands

import (
	"context"
	"fmt"

	"booksamples/internal/core/domain/model/collection"
	"booksamples/internal/core/domain/model/distribution"
)

// CreateCollectionCommandHandler validates and saves a draft collection.
// Lines of a collection against a distribution take their snapshot from the
// matching distribution line.
type CreateCollectionCommandHandler struct {
	uowFactory     CollectionUoWFactory
	fieldWarehouse string
}

func NewCreateCollectionCommandHandler(
	uowFactory CollectionUoWFactory,
	fieldWarehouse string,
) CreateCollectionCommandHandler {
	return CreateCollectionCommandHandler{
		uowFactory:     uowFactory,
		fieldWarehouse: fieldWarehouse,
	}
}

func (h CreateCollectionCommandHandler) Handle(ctx context.Context, cmd CreateCollectionCommand) error {
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

	header := cmd.Header()
	var d *distribution.Distribution
	if header.DistributionID != nil {
		var err error
		if d, err = uow.DistributionRepository().Get(ctx, *header.DistributionID); err != nil {
			return err
		}
	}

	items := make([]collection.Item, 0, len(cmd.Items()))
	for _, line := range cmd.Items() {
		item, err := collectionItem(d, line)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	c, err := collection.NewCollection(cmd.CollectionID(), header, items)
	if err != nil {
		return err
	}

	vc, err := collectionValidationContext(ctx, uow, c, d, h.fieldWarehouse)
	if err != nil {
		return err
	}
	if err = c.ValidateDraft(vc); err != nil {
		return err
	}

	if err = uow.CollectionRepository().Add(ctx, c); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

func collectionItem(d *distribution.Distribution, line CollectionLine) (collection.Item, error) {
	if d == nil {
		return collection.NewItem(line.ItemCode, "", "",
			line.QtyDistributed, line.QtyPreviouslyCollected, line.QtyPending, line.Quantities)
	}

	di, ok := d.Item(line.ItemCode)
	if !ok {
		return collection.Item{}, fmt.Errorf("%w: %s", distribution.ErrItemNotInDistribution, line.ItemCode)
	}
	return collection.NewItem(di.ItemCode(), di.ItemName(), di.ClassGrade(),
		di.Qty(), di.QtyCollected(), di.QtyPending(), line.Quantities)
}

// collectionValidationContext resolves the referenced distribution, loading
// it unless d is given, and the warehouse of the collection's vehicle,
// falling back to the distribution's vehicle.
func collectionValidationContext(
	ctx context.Context,
	uow CollectionUoW,
	c *collection.Collection,
	d *distribution.Distribution,
	fieldWarehouse string,
) (collection.ValidationContext, error) {
	vc := collection.ValidationContext{FieldWarehouse: fieldWarehouse}

	vehicleID := c.VehicleID()
	if c.DistributionID() != nil {
		if d == nil {
			var err error
			if d, err = uow.DistributionRepository().Get(ctx, *c.DistributionID()); err != nil {
				return vc, err
			}
		}
		vc.Distribution = d
		if vehicleID == nil {
			vehicleID = d.VehicleID()
		}
	}

	if vehicleID != nil {
		v, err := uow.VehicleRepository().Get(ctx, *vehicleID)
		if err != nil {
			return vc, err
		}
		vc.VehicleWarehouse = v.Warehouse()
	}
	return vc, nil
}
