package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/pkg/errs"
	"booksamples/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrPostOpeningStockCommandIsNotConstructed = errors.New(
	"PostOpeningStockCommand must be created via NewPostOpeningStockCommand constructor",
)

// ReceiptLine is one item received into the warehouse.
type ReceiptLine struct {
	ItemCode string
	Qty      decimal.Decimal
}

// PostOpeningStockCommand puts books into a warehouse with a Material
// Receipt, typically the central store before the first loading.
type PostOpeningStockCommand struct {
	receiptID   kernel.UUID
	warehouse   string
	postingDate time.Time
	lines       []ReceiptLine

	guard guard.ConstructorGuard
}

func NewPostOpeningStockCommand(
	receiptID kernel.UUID,
	warehouse string,
	postingDate time.Time,
	lines []ReceiptLine,
) (PostOpeningStockCommand, error) {
	var problems []error
	problems = append(problems, receiptID.Validate())
	if strings.TrimSpace(warehouse) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("warehouse"))
	}
	if len(lines) == 0 {
		problems = append(problems, kernel.ErrNoItems)
	}
	for i, l := range lines {
		if !l.Qty.IsPositive() {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("qty",
				fmt.Errorf("line %d: %s is not greater than 0", i+1, l.Qty)))
		}
	}
	if err := errors.Join(problems...); err != nil {
		return PostOpeningStockCommand{}, err
	}

	return PostOpeningStockCommand{
		receiptID:   receiptID,
		warehouse:   warehouse,
		postingDate: postingDate,
		lines:       append([]ReceiptLine(nil), lines...),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c PostOpeningStockCommand) Validate() error {
	return c.guard.Validate(ErrPostOpeningStockCommandIsNotConstructed)
}

func (c PostOpeningStockCommand) ReceiptID() kernel.UUID { return c.receiptID }
func (c PostOpeningStockCommand) Warehouse() string { return c.warehouse }
func (c PostOpeningStockCommand) PostingDate() time.Time { return c.postingDate }
func (c PostOpeningStockCommand) Lines() []ReceiptLine { return append([]ReceiptLine(nil), c.lines...) }
