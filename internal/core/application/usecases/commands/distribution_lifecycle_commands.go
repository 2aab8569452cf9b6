package commands

import (
	"errors"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/pkg/guard"
)

var (
	ErrSubmitDistributionCommandIsNotConstructed = errors.New(
		"SubmitDistributionCommand must be created via NewSubmitDistributionCommand constructor",
	)
	ErrCancelDistributionCommandIsNotConstructed = errors.New(
		"CancelDistributionCommand must be created via NewCancelDistributionCommand constructor",
	)
)

// SubmitDistributionCommand posts the transfer of a draft distribution from
// the vehicle to the field warehouse.
type SubmitDistributionCommand struct {
	distributionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewSubmitDistributionCommand(distributionID kernel.UUID) (SubmitDistributionCommand, error) {
	if err := distributionID.Validate(); err != nil {
		return SubmitDistributionCommand{}, err
	}
	return SubmitDistributionCommand{distributionID: distributionID, guard: guard.NewConstructorGuard()}, nil
}

func (c SubmitDistributionCommand) Validate() error {
	return c.guard.Validate(ErrSubmitDistributionCommandIsNotConstructed)
}

func (c SubmitDistributionCommand) DistributionID() kernel.UUID {
	return c.distributionID
}

// CancelDistributionCommand reverses the transfer of a submitted
// distribution.
type CancelDistributionCommand struct {
	distributionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelDistributionCommand(distributionID kernel.UUID) (CancelDistributionCommand, error) {
	if err := distributionID.Validate(); err != nil {
		return CancelDistributionCommand{}, err
	}
	return CancelDistributionCommand{distributionID: distributionID, guard: guard.NewConstructorGuard()}, nil
}

func (c CancelDistributionCommand) Validate() error {
	return c.guard.Validate(ErrCancelDistributionCommandIsNotConstructed)
}

func (c CancelDistributionCommand) DistributionID() kernel.UUID {
	return c.distributionID
}
