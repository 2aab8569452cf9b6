package commands

import (
	"errors"

	"booksamples/internal/core/domain/model/catalog"
	"booksamples/internal/pkg/guard"
)

var ErrCreateItemCommandIsNotConstructed = errors.New(
	"CreateItemCommand must be created via NewCreateItemCommand constructor",
)

// CreateItemCommand adds a sample book to the catalog. The item itself is
// built by the handler so field checks live in one place.
type CreateItemCommand struct {
	code     string
	name     string
	stockUOM string
	details  catalog.Details

	guard guard.ConstructorGuard
}

func NewCreateItemCommand(code, name, stockUOM string, details catalog.Details) (CreateItemCommand, error) {
	if _, err := catalog.NewItem(code, name, stockUOM, details); err != nil {
		return CreateItemCommand{}, err
	}
	return CreateItemCommand{
		code:     code,
		name:     name,
		stockUOM: stockUOM,
		details:  details,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateItemCommandIsNotConstructed)
}

func (c CreateItemCommand) Code() string { return c.code }
func (c CreateItemCommand) Name() string { return c.name }
func (c CreateItemCommand) StockUOM() string { return c.stockUOM }
func (c CreateItemCommand) Details() catalog.Details { return c.details }
