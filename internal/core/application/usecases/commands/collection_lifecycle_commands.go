package commands

import (
	"errors"

	"booksamples/internal/core/domain/model/collection"
	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/pkg/errs"
	"booksamples/internal/pkg/guard"
)

var (
	ErrUpdateCollectionQuantitiesCommandIsNotConstructed = errors.New(
		"UpdateCollectionQuantitiesCommand must be created via NewUpdateCollectionQuantitiesCommand constructor",
	)
	ErrSubmitCollectionCommandIsNotConstructed = errors.New(
		"SubmitCollectionCommand must be created via NewSubmitCollectionCommand constructor",
	)
	ErrCancelCollectionCommandIsNotConstructed = errors.New(
		"CancelCollectionCommand must be created via NewCancelCollectionCommand constructor",
	)
)

// UpdateCollectionQuantitiesCommand replaces the collected, damaged and lost
// quantities of draft lines.
type UpdateCollectionQuantitiesCommand struct {
	collectionID kernel.UUID
	updates      []collection.QuantityUpdate

	guard guard.ConstructorGuard
}

func NewUpdateCollectionQuantitiesCommand(
	collectionID kernel.UUID,
	updates []collection.QuantityUpdate,
) (UpdateCollectionQuantitiesCommand, error) {
	if err := collectionID.Validate(); err != nil {
		return UpdateCollectionQuantitiesCommand{}, err
	}
	if len(updates) == 0 {
		return UpdateCollectionQuantitiesCommand{}, errs.NewValueIsRequiredError("updates")
	}

	return UpdateCollectionQuantitiesCommand{
		collectionID: collectionID,
		updates:      append([]collection.QuantityUpdate(nil), updates...),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCollectionQuantitiesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCollectionQuantitiesCommandIsNotConstructed)
}

func (c UpdateCollectionQuantitiesCommand) CollectionID() kernel.UUID { return c.collectionID }
func (c UpdateCollectionQuantitiesCommand) Updates() []collection.QuantityUpdate {
	return append([]collection.QuantityUpdate(nil), c.updates...)
}

// SubmitCollectionCommand posts the return and write-off of a draft
// collection and updates its distribution.
type SubmitCollectionCommand struct {
	collectionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewSubmitCollectionCommand(collectionID kernel.UUID) (SubmitCollectionCommand, error) {
	if err := collectionID.Validate(); err != nil {
		return SubmitCollectionCommand{}, err
	}
	return SubmitCollectionCommand{collectionID: collectionID, guard: guard.NewConstructorGuard()}, nil
}

func (c SubmitCollectionCommand) Validate() error {
	return c.guard.Validate(ErrSubmitCollectionCommandIsNotConstructed)
}

func (c SubmitCollectionCommand) CollectionID() kernel.UUID {
	return c.collectionID
}

// CancelCollectionCommand reverses a submitted collection.
type CancelCollectionCommand struct {
	collectionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelCollectionCommand(collectionID kernel.UUID) (CancelCollectionCommand, error) {
	if err := collectionID.Validate(); err != nil {
		return CancelCollectionCommand{}, err
	}
	return CancelCollectionCommand{collectionID: collectionID, guard: guard.NewConstructorGuard()}, nil
}

func (c CancelCollectionCommand) Validate() error {
	return c.guard.Validate(ErrCancelCollectionCommandIsNotConstructed)
}

func (c CancelCollectionCommand) CollectionID() kernel.UUID {
	return c.collectionID
}
