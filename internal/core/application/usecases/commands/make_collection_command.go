package commands

import (
	"errors"
	"time"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/pkg/errs"
	"booksamples/internal/pkg/guard"
)

var ErrMakeCollectionCommandIsNotConstructed = errors.New(
	"MakeCollectionCommand must be created via NewMakeCollectionCommand constructor",
)

// MakeCollectionCommand drafts a collection of everything still pending on
// a submitted distribution. TargetWarehouse is optional and overrides the
// vehicle warehouse as the return destination.
type MakeCollectionCommand struct {
	collectionID    kernel.UUID
	distributionID  kernel.UUID
	collectionDate  time.Time
	targetWarehouse string

	guard guard.ConstructorGuard
}

func NewMakeCollectionCommand(
	collectionID, distributionID kernel.UUID,
	collectionDate time.Time,
	targetWarehouse string,
) (MakeCollectionCommand, error) {
	if err := collectionID.Validate(); err != nil {
		return MakeCollectionCommand{}, err
	}
	if err := distributionID.Validate(); err != nil {
		return MakeCollectionCommand{}, errs.NewValueIsRequiredErrorWithCause("distribution", err)
	}

	return MakeCollectionCommand{
		collectionID:    collectionID,
		distributionID:  distributionID,
		collectionDate:  collectionDate,
		targetWarehouse: targetWarehouse,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c MakeCollectionCommand) Validate() error {
	return c.guard.Validate(ErrMakeCollectionCommandIsNotConstructed)
}

func (c MakeCollectionCommand) CollectionID() kernel.UUID { return c.collectionID }
func (c MakeCollectionCommand) DistributionID() kernel.UUID { return c.distributionID }
func (c MakeCollectionCommand) CollectionDate() time.Time { return c.collectionDate }
func (c MakeCollectionCommand) TargetWarehouse() string { return c.targetWarehouse }
