package collection

import (
	"fmt"
	"strings"

	"booksamples/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Quantities is what came back for one line: good books, damaged and lost.
type Quantities struct {
	Collected decimal.Decimal
	Damaged   decimal.Decimal
	Lost      decimal.Decimal
}

// Total returns collected + damaged + lost.
func (q Quantities) Total() decimal.Decimal {
	return q.Collected.Add(q.Damaged).Add(q.Lost)
}

// WrittenOff returns damaged + lost.
func (q Quantities) WrittenOff() decimal.Decimal {
	return q.Damaged.Add(q.Lost)
}

// Item is a line of a collection. The distributed, previously collected and
// pending quantities are a snapshot of the distribution line taken when the
// collection was drafted.
type Item struct {
	itemCode               string
	itemName               string
	classGrade             string
	qtyDistributed         decimal.Decimal
	qtyPreviouslyCollected decimal.Decimal
	qtyPending             decimal.Decimal
	quantities             Quantities
}

// NewItem creates a collection line.
func NewItem(
	itemCode, itemName, classGrade string,
	qtyDistributed, qtyPreviouslyCollected, qtyPending decimal.Decimal,
	quantities Quantities,
) (Item, error) {
	itemCode = strings.TrimSpace(itemCode)
	if itemCode == "" {
		return Item{}, errs.NewValueIsRequiredError("item code")
	}

	return Item{
		itemCode:               itemCode,
		itemName:               itemName,
		classGrade:             classGrade,
		qtyDistributed:         qtyDistributed,
		qtyPreviouslyCollected: qtyPreviouslyCollected,
		qtyPending:             qtyPending,
		quantities:             quantities,
	}, nil
}

func (i Item) ItemCode() string { return i.itemCode }
func (i Item) ItemName() string { return i.itemName }
func (i Item) ClassGrade() string { return i.classGrade }
func (i Item) QtyDistributed() decimal.Decimal { return i.qtyDistributed }
func (i Item) QtyPreviouslyCollected() decimal.Decimal { return i.qtyPreviouslyCollected }
func (i Item) QtyPending() decimal.Decimal { return i.qtyPending }
func (i Item) Quantities() Quantities { return i.quantities }

func (i Item) validateQuantities() error {
	q := i.quantities
	if q.Collected.IsNegative() || q.Damaged.IsNegative() || q.Lost.IsNegative() {
		return fmt.Errorf("%w for %s", ErrNegativeQuantity, i.itemCode)
	}
	if total := q.Total(); total.GreaterThan(i.qtyPending) {
		return fmt.Errorf("%w: total collection (%s) cannot exceed pending quantity (%s) for %s",
			ErrExceedsPending, total, i.qtyPending, i.itemCode)
	}
	return nil
}
