package loading

import (
	"fmt"
	"strings"

	"booksamples/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is a line of a loading.
type Item struct {
	itemCode     string
	itemName     string
	classGrade   string
	qty          decimal.Decimal
	availableQty decimal.Decimal
}

// NewItem creates a loading line. Quantity positivity is checked by
// Loading.Validate so that every offending line is reported together.
func NewItem(itemCode, itemName, classGrade string, qty decimal.Decimal) (Item, error) {
	return RestoreItem(itemCode, itemName, classGrade, qty, decimal.Zero)
}

// RestoreItem rebuilds a loading line including its availability snapshot.
func RestoreItem(itemCode, itemName, classGrade string, qty, availableQty decimal.Decimal) (Item, error) {
	itemCode = strings.TrimSpace(itemCode)
	if itemCode == "" {
		return Item{}, errs.NewValueIsRequiredError("item code")
	}
	return Item{
		itemCode:     itemCode,
		itemName:     itemName,
		classGrade:   classGrade,
		qty:          qty,
		availableQty: availableQty,
	}, nil
}

// ItemCode returns the book's item code.
func (i Item) ItemCode() string {
	return i.itemCode
}

// ItemName returns the book title captured on the line.
func (i Item) ItemName() string {
	return i.itemName
}

// ClassGrade returns the class grade captured on the line.
func (i Item) ClassGrade() string {
	return i.classGrade
}

// Qty returns the quantity to load.
func (i Item) Qty() decimal.Decimal {
	return i.qty
}

// AvailableQty returns the on-hand quantity at the source warehouse observed
// at the last validation.
func (i Item) AvailableQty() decimal.Decimal {
	return i.availableQty
}

func (i Item) validateQty() error {
	if !i.qty.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("qty", fmt.Errorf("quantity for %s must be greater than 0", i.itemCode))
	}
	return nil
}
