package stock

import (
	"errors"
	"fmt"
	"time"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Voucher types recorded on stock entries so the ledger can trace a movement
// back to the document that caused it.
const (
	VoucherLoading      = "Book Sample Loading"
	VoucherDistribution = "Book Sample Distribution"
	VoucherCollection   = "Book Sample Collection"
	VoucherOpeningStock = "Opening Stock"
)

var (
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")
	ErrEntryHasNoLines       = errors.New("stock entry must have at least one line")
)

// Line is one item movement inside a stock entry.
type Line struct {
	ItemCode        string
	Qty             decimal.Decimal
	SourceWarehouse string
	TargetWarehouse string
}

// Reference links a stock entry to the document that posted it.
type Reference struct {
	VoucherType string
	VoucherID   kernel.UUID
}

// Movement is the signed effect of a stock entry on a single bin.
type Movement struct {
	ItemCode  string
	Warehouse string
	Qty       decimal.Decimal
}

// Entry is an inventory document. Submitting it applies its movements to the
// bins; cancelling it applies the reversal. The Loading, Distribution and
// Collection aggregates never touch bins directly, they create entries.
type Entry struct {
	id          kernel.UUID
	entryType   EntryType
	postingDate time.Time
	reference   Reference
	lines       []Line
	docStatus   kernel.DocStatus

	isConstructed bool
}

// NewEntry creates a draft stock entry.
//
// Every line needs a positive quantity and an item code. Transfers need both
// warehouses (and they must differ), issues need a source and receipts need a
// target.
func NewEntry(
	id kernel.UUID,
	entryType EntryType,
	postingDate time.Time,
	reference Reference,
	lines []Line,
) (*Entry, error) {
	return RestoreEntry(id, entryType, postingDate, reference, lines, kernel.Draft)
}

// RestoreEntry rebuilds an entry from persistence.
func RestoreEntry(
	id kernel.UUID,
	entryType EntryType,
	postingDate time.Time,
	reference Reference,
	lines []Line,
	docStatus kernel.DocStatus,
) (*Entry, error) {
	if err := errors.Join(id.Validate(), entryType.Validate(), docStatus.Validate()); err != nil {
		return nil, err
	}
	if reference.VoucherType == "" {
		return nil, errs.NewValueIsRequiredError("voucher type")
	}
	if len(lines) == 0 {
		return nil, ErrEntryHasNoLines
	}

	var lineErrs []error
	for i, l := range lines {
		lineErrs = append(lineErrs, validateLine(entryType, i, l))
	}
	if err := errors.Join(lineErrs...); err != nil {
		return nil, err
	}

	copied := make([]Line, len(lines))
	copy(copied, lines)

	return &Entry{
		id:            id,
		entryType:     entryType,
		postingDate:   kernel.DateOf(postingDate),
		reference:     reference,
		lines:         copied,
		docStatus:     docStatus,
		isConstructed: true,
	}, nil
}

func validateLine(entryType EntryType, idx int, l Line) error {
	if l.ItemCode == "" {
		return errs.NewValueIsRequiredError(fmt.Sprintf("item code of line %d", idx+1))
	}
	if !l.Qty.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("qty", fmt.Errorf("%s for %s is not greater than 0", l.Qty, l.ItemCode))
	}
	if entryType.needsSource() && l.SourceWarehouse == "" {
		return errs.NewValueIsRequiredError(fmt.Sprintf("source warehouse for %s", l.ItemCode))
	}
	if entryType.needsTarget() && l.TargetWarehouse == "" {
		return errs.NewValueIsRequiredError(fmt.Sprintf("target warehouse for %s", l.ItemCode))
	}
	if entryType == MaterialTransfer && l.SourceWarehouse == l.TargetWarehouse {
		return errs.NewValueIsInvalidErrorWithCause("warehouse", fmt.Errorf("source and target are both %s", l.SourceWarehouse))
	}
	return nil
}

// Validate ensures the entry was created through its constructor.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

func (e *Entry) ID() kernel.UUID { return e.id }
func (e *Entry) Type() EntryType { return e.entryType }
func (e *Entry) PostingDate() time.Time { return e.postingDate }
func (e *Entry) Reference() Reference { return e.reference }
func (e *Entry) DocStatus() kernel.DocStatus { return e.docStatus }

// Lines returns a copy of the entry lines.
func (e *Entry) Lines() []Line {
	out := make([]Line, len(e.lines))
	copy(out, e.lines)
	return out
}

// Submit marks the entry as posted.
func (e *Entry) Submit() error {
	next, err := e.docStatus.Submit()
	if err != nil {
		return err
	}
	e.docStatus = next
	return nil
}

// Cancel marks the entry as reversed.
func (e *Entry) Cancel() error {
	next, err := e.docStatus.Cancel()
	if err != nil {
		return err
	}
	e.docStatus = next
	return nil
}

// Movements returns the signed bin changes the entry causes when submitted.
func (e *Entry) Movements() []Movement {
	movements := make([]Movement, 0, len(e.lines)*2)
	for _, l := range e.lines {
		if e.entryType.needsSource() {
			movements = append(movements, Movement{ItemCode: l.ItemCode, Warehouse: l.SourceWarehouse, Qty: l.Qty.Neg()})
		}
		if e.entryType.needsTarget() {
			movements = append(movements, Movement{ItemCode: l.ItemCode, Warehouse: l.TargetWarehouse, Qty: l.Qty})
		}
	}
	return movements
}

// ReversalMovements returns the bin changes that undo Movements.
func (e *Entry) ReversalMovements() []Movement {
	movements := e.Movements()
	for i := range movements {
		movements[i].Qty = movements[i].Qty.Neg()
	}
	return movements
}
