package commands

import (
	"errors"

	"booksamples/internal/core/domain/model/distribution"
	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/pkg/errs"
	"booksamples/internal/pkg/guard"
)

var ErrCreateDistributionCommandIsNotConstructed = errors.New(
	"CreateDistributionCommand must be created via NewCreateDistributionCommand constructor",
)

// CreateDistributionCommand drafts the hand-over of samples to a school.
//
// Warehouses may be left empty: the source is taken from the linked loading
// or the vehicle, the target defaults to the field warehouse.
type CreateDistributionCommand struct {
	distributionID kernel.UUID
	header         distribution.Header
	items          []ItemLine

	guard guard.ConstructorGuard
}

func NewCreateDistributionCommand(
	distributionID kernel.UUID,
	header distribution.Header,
	items []ItemLine,
) (CreateDistributionCommand, error) {
	var schoolErr error
	if err := header.SchoolID.Validate(); err != nil {
		schoolErr = errs.NewValueIsRequiredErrorWithCause("school", err)
	}
	if err := errors.Join(distributionID.Validate(), schoolErr, validateItemLines(items)); err != nil {
		return CreateDistributionCommand{}, err
	}

	return CreateDistributionCommand{
		distributionID: distributionID,
		header:         header,
		items:          append([]ItemLine(nil), items...),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDistributionCommand) Validate() error {
	return c.guard.Validate(ErrCreateDistributionCommandIsNotConstructed)
}

func (c CreateDistributionCommand) DistributionID() kernel.UUID { return c.distributionID }
func (c CreateDistributionCommand) Header() distribution.Header { return c.header }
func (c CreateDistributionCommand) Items() []ItemLine { return append([]ItemLine(nil), c.items...) }
