package commands

import (
	"errors"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/pkg/guard"
)

var (
	ErrSubmitLoadingCommandIsNotConstructed = errors.New(
		"SubmitLoadingCommand must be created via NewSubmitLoadingCommand constructor",
	)
	ErrCancelLoadingCommandIsNotConstructed = errors.New(
		"CancelLoadingCommand must be created via NewCancelLoadingCommand constructor",
	)
	ErrUpdateLoadingStatusCommandIsNotConstructed = errors.New(
		"UpdateLoadingStatusCommand must be created via NewUpdateLoadingStatusCommand constructor",
	)
)

// SubmitLoadingCommand posts the transfer of a draft loading into its vehicle.
type SubmitLoadingCommand struct {
	loadingID kernel.UUID

	guard guard.ConstructorGuard
}

func NewSubmitLoadingCommand(loadingID kernel.UUID) (SubmitLoadingCommand, error) {
	if err := loadingID.Validate(); err != nil {
		return SubmitLoadingCommand{}, err
	}
	return SubmitLoadingCommand{loadingID: loadingID, guard: guard.NewConstructorGuard()}, nil
}

func (c SubmitLoadingCommand) Validate() error {
	return c.guard.Validate(ErrSubmitLoadingCommandIsNotConstructed)
}

func (c SubmitLoadingCommand) LoadingID() kernel.UUID {
	return c.loadingID
}

// CancelLoadingCommand reverses the transfer of a submitted loading.
type CancelLoadingCommand struct {
	loadingID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelLoadingCommand(loadingID kernel.UUID) (CancelLoadingCommand, error) {
	if err := loadingID.Validate(); err != nil {
		return CancelLoadingCommand{}, err
	}
	return CancelLoadingCommand{loadingID: loadingID, guard: guard.NewConstructorGuard()}, nil
}

func (c CancelLoadingCommand) Validate() error {
	return c.guard.Validate(ErrCancelLoadingCommandIsNotConstructed)
}

func (c CancelLoadingCommand) LoadingID() kernel.UUID {
	return c.loadingID
}

// UpdateLoadingStatusCommand sets where a submitted loading's van is. The
// status is given by its display name, e.g. "In Transit"; unknown names are
// rejected by the handler.
type UpdateLoadingStatusCommand struct {
	loadingID kernel.UUID
	status    string

	guard guard.ConstructorGuard
}

func NewUpdateLoadingStatusCommand(loadingID kernel.UUID, status string) (UpdateLoadingStatusCommand, error) {
	if err := loadingID.Validate(); err != nil {
		return UpdateLoadingStatusCommand{}, err
	}
	return UpdateLoadingStatusCommand{loadingID: loadingID, status: status, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateLoadingStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLoadingStatusCommandIsNotConstructed)
}

func (c UpdateLoadingStatusCommand) LoadingID() kernel.UUID {
	return c.loadingID
}

func (c UpdateLoadingStatusCommand) Status() string {
	return c.status
}
