package commands

import (
	"errors"
	"fmt"
	"strings"

	"booksamples/internal/core/domain/model/collection"
	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/pkg/errs"
	"booksamples/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateCollectionCommandIsNotConstructed = errors.New(
	"CreateCollectionCommand must be created via NewCreateCollectionCommand constructor",
)

// CollectionLine is what came back for one item. The distributed,
// previously collected and pending quantities are only read for collections
// without a distribution; otherwise they are taken from the distribution.
type CollectionLine struct {
	ItemCode               string
	Quantities             collection.Quantities
	QtyDistributed         decimal.Decimal
	QtyPreviouslyCollected decimal.Decimal
	QtyPending             decimal.Decimal
}

// CreateCollectionCommand drafts a collection with explicit lines, either
// against a distribution or standalone for a school.
type CreateCollectionCommand struct {
	collectionID kernel.UUID
	header       collection.Header
	items        []CollectionLine

	guard guard.ConstructorGuard
}

func NewCreateCollectionCommand(
	collectionID kernel.UUID,
	header collection.Header,
	items []CollectionLine,
) (CreateCollectionCommand, error) {
	if err := collectionID.Validate(); err != nil {
		return CreateCollectionCommand{}, err
	}
	if header.DistributionID == nil && header.SchoolID.Validate() != nil {
		return CreateCollectionCommand{}, errs.NewValueIsRequiredError("school")
	}
	if len(items) == 0 {
		return CreateCollectionCommand{}, errs.NewValueIsRequiredError("items")
	}

	var problems []error
	for i, item := range items {
		if strings.TrimSpace(item.ItemCode) == "" {
			problems = append(problems, errs.NewValueIsRequiredError(fmt.Sprintf("item code of line %d", i+1)))
		}
	}
	if err := errors.Join(problems...); err != nil {
		return CreateCollectionCommand{}, err
	}

	return CreateCollectionCommand{
		collectionID: collectionID,
		header:       header,
		items:        append([]CollectionLine(nil), items...),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCollectionCommand) Validate() error {
	return c.guard.Validate(ErrCreateCollectionCommandIsNotConstructed)
}

func (c CreateCollectionCommand) CollectionID() kernel.UUID { return c.collectionID }
func (c CreateCollectionCommand) Header() collection.Header { return c.header }
func (c CreateCollectionCommand) Items() []CollectionLine {
	return append([]CollectionLine(nil), c.items...)
}
