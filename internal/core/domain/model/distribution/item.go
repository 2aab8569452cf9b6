package distribution

import (
	"fmt"
	"strings"
	"time"

	"booksamples/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is a line of a distribution. Pending is derived: qty - collected.
type Item struct {
	itemCode           string
	itemName           string
	classGrade         string
	subject            string
	qty                decimal.Decimal
	qtyCollected       decimal.Decimal
	qtyPending         decimal.Decimal
	availableQtyInVan  decimal.Decimal
	expectedReturnDate *time.Time
	collectionStatus   CollectionStatus
}

// NewItem creates an uncollected distribution line. expectedReturnDate may be
// nil, in which case the document's date is copied on validation.
func NewItem(
	itemCode, itemName, classGrade, subject string,
	qty decimal.Decimal,
	expectedReturnDate *time.Time,
) (Item, error) {
	return RestoreItem(itemCode, itemName, classGrade, subject, qty, decimal.Zero, decimal.Zero,
		expectedReturnDate, Pending)
}

// RestoreItem rebuilds a line from persistence.
func RestoreItem(
	itemCode, itemName, classGrade, subject string,
	qty, qtyCollected, availableQtyInVan decimal.Decimal,
	expectedReturnDate *time.Time,
	collectionStatus CollectionStatus,
) (Item, error) {
	itemCode = strings.TrimSpace(itemCode)
	if itemCode == "" {
		return Item{}, errs.NewValueIsRequiredError("item code")
	}
	if err := collectionStatus.Validate(); err != nil {
		return Item{}, err
	}

	return Item{
		itemCode:           itemCode,
		itemName:           itemName,
		classGrade:         classGrade,
		subject:            subject,
		qty:                qty,
		qtyCollected:       qtyCollected,
		qtyPending:         qty.Sub(qtyCollected),
		availableQtyInVan:  availableQtyInVan,
		expectedReturnDate: expectedReturnDate,
		collectionStatus:   collectionStatus,
	}, nil
}

func (i Item) ItemCode() string { return i.itemCode }
func (i Item) ItemName() string { return i.itemName }
func (i Item) ClassGrade() string { return i.classGrade }
func (i Item) Subject() string { return i.subject }
func (i Item) Qty() decimal.Decimal { return i.qty }
func (i Item) QtyCollected() decimal.Decimal { return i.qtyCollected }
func (i Item) QtyPending() decimal.Decimal { return i.qtyPending }
func (i Item) AvailableQtyInVan() decimal.Decimal { return i.availableQtyInVan }
func (i Item) ExpectedReturnDate() *time.Time { return i.expectedReturnDate }
func (i Item) CollectionStatus() CollectionStatus { return i.collectionStatus }

// HasPending reports whether part of the line is still at the school.
func (i Item) HasPending() bool {
	return i.qtyPending.IsPositive()
}

func (i Item) validateQty() error {
	if !i.qty.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("qty", fmt.Errorf("quantity for %s must be greater than 0", i.itemCode))
	}
	return nil
}
