package collection

import (
	"errors"
	"fmt"
	"time"

	"booksamples/internal/core/domain/model/distribution"
	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/stock"
	"booksamples/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrCollectionIsNotConstructed = errors.New("Collection must be created via NewCollection constructor")
	ErrNegativeQuantity           = errors.New("quantities cannot be negative")
	ErrExceedsPending             = errors.New("collection exceeds pending quantity")
	ErrSchoolMismatch             = errors.New("school does not match the distribution")
	ErrAlreadyFullyCollected      = errors.New("distribution is already fully collected")
	ErrNothingPending             = errors.New("distribution has no pending items")
	ErrItemNotInCollection        = errors.New("item is not part of the collection")
)

// Header carries the document-level fields of a collection.
type Header struct {
	// SchoolID may be zero when a distribution is referenced; it is then
	// taken from the distribution.
	SchoolID        kernel.UUID
	DistributionID  *kernel.UUID
	VehicleID       *kernel.UUID
	CollectorName   string
	CollectionDate  time.Time
	SourceWarehouse string
	TargetWarehouse string
}

// ValidationContext holds the reference data ValidateDraft needs.
type ValidationContext struct {
	// Distribution is the referenced document, nil when the collection has
	// no distribution reference.
	Distribution *distribution.Distribution
	// FieldWarehouse is the default source, "Samples in Field".
	FieldWarehouse string
	// VehicleWarehouse is the default return target, empty when the
	// collection has no vehicle.
	VehicleWarehouse string
}

// QuantityUpdate replaces the returned quantities of one draft line.
type QuantityUpdate struct {
	ItemCode   string
	Quantities Quantities
}

// Collection records books coming back from a school. On submit good books
// are transferred back from the field warehouse and damaged or lost books
// are written off; the referenced distribution is told about both.
type Collection struct {
	id              kernel.UUID
	schoolID        kernel.UUID
	distributionID  *kernel.UUID
	vehicleID       *kernel.UUID
	collectorName   string
	collectionDate  time.Time
	sourceWarehouse string
	targetWarehouse string
	items           []Item
	totalCollected  decimal.Decimal
	totalDamaged    decimal.Decimal
	totalLost       decimal.Decimal
	returnEntryID   *kernel.UUID
	writeOffEntryID *kernel.UUID
	docStatus       kernel.DocStatus
	status          Status

	isConstructed bool
}

// NewCollection creates a draft collection.
func NewCollection(id kernel.UUID, header Header, items []Item) (*Collection, error) {
	return RestoreCollection(id, header, items, nil, nil, kernel.Draft, Draft)
}

// RestoreCollection rebuilds a collection from persistence.
func RestoreCollection(
	id kernel.UUID,
	header Header,
	items []Item,
	returnEntryID *kernel.UUID,
	writeOffEntryID *kernel.UUID,
	docStatus kernel.DocStatus,
	status Status,
) (*Collection, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := errors.Join(docStatus.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if header.DistributionID == nil && header.SchoolID.Validate() != nil {
		return nil, errs.NewValueIsRequiredError("school")
	}

	c := &Collection{
		id:              id,
		schoolID:        header.SchoolID,
		distributionID:  header.DistributionID,
		vehicleID:       header.VehicleID,
		collectorName:   header.CollectorName,
		collectionDate:  kernel.DateOf(header.CollectionDate),
		sourceWarehouse: header.SourceWarehouse,
		targetWarehouse: header.TargetWarehouse,
		items:           append([]Item(nil), items...),
		returnEntryID:   returnEntryID,
		writeOffEntryID: writeOffEntryID,
		docStatus:       docStatus,
		status:          status,
		isConstructed:   true,
	}
	c.calculateTotals()
	return c, nil
}

// NewFromDistribution drafts a collection for everything still pending on a
// submitted distribution. Every line defaults to collecting its full pending
// quantity; the caller adjusts before submit.
func NewFromDistribution(id kernel.UUID, d *distribution.Distribution, collectionDate time.Time) (*Collection, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if err := d.DocStatus().RequireSubmitted(); err != nil {
		return nil, fmt.Errorf("distribution %s: %w", d.ID(), err)
	}
	if d.Status() == distribution.FullyCollected {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyFullyCollected, d.ID())
	}

	pending := d.PendingItems()
	if len(pending) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNothingPending, d.ID())
	}

	items := make([]Item, 0, len(pending))
	for _, p := range pending {
		item, err := NewItem(p.ItemCode(), p.ItemName(), p.ClassGrade(),
			p.Qty(), p.QtyCollected(), p.QtyPending(),
			Quantities{Collected: p.QtyPending()})
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	distributionID := d.ID()
	return NewCollection(id, Header{
		SchoolID:        d.SchoolID(),
		DistributionID:  &distributionID,
		VehicleID:       d.VehicleID(),
		CollectionDate:  collectionDate,
		SourceWarehouse: d.TargetWarehouse(),
	}, items)
}

// Validate ensures the collection was created through its constructor.
func (c *Collection) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCollectionIsNotConstructed
	}
	return nil
}

func (c *Collection) ID() kernel.UUID { return c.id }
func (c *Collection) SchoolID() kernel.UUID { return c.schoolID }
func (c *Collection) DistributionID() *kernel.UUID { return c.distributionID }
func (c *Collection) VehicleID() *kernel.UUID { return c.vehicleID }
func (c *Collection) CollectorName() string { return c.collectorName }
func (c *Collection) CollectionDate() time.Time { return c.collectionDate }
func (c *Collection) SourceWarehouse() string { return c.sourceWarehouse }
func (c *Collection) TargetWarehouse() string { return c.targetWarehouse }
func (c *Collection) TotalCollected() decimal.Decimal { return c.totalCollected }
func (c *Collection) TotalDamaged() decimal.Decimal { return c.totalDamaged }
func (c *Collection) TotalLost() decimal.Decimal { return c.totalLost }
func (c *Collection) ReturnEntryID() *kernel.UUID { return c.returnEntryID }
func (c *Collection) WriteOffEntryID() *kernel.UUID { return c.writeOffEntryID }
func (c *Collection) DocStatus() kernel.DocStatus { return c.docStatus }
func (c *Collection) Status() Status { return c.status }

// Items returns a copy of the collection lines.
func (c *Collection) Items() []Item {
	return append([]Item(nil), c.items...)
}

// UpdateQuantities replaces the returned quantities of draft lines. Bounds
// are checked by ValidateDraft.
func (c *Collection) UpdateQuantities(updates []QuantityUpdate) error {
	if err := c.docStatus.RequireDraft(); err != nil {
		return err
	}

	next := append([]Item(nil), c.items...)
	for _, u := range updates {
		matched := false
		for i := range next {
			if next[i].itemCode == u.ItemCode {
				next[i].quantities = u.Quantities
				matched = true
			}
		}
		if !matched {
			return fmt.Errorf("%w: %s", ErrItemNotInCollection, u.ItemCode)
		}
	}

	c.items = next
	c.calculateTotals()
	return nil
}

// SetTargetWarehouse sets where good books are returned to. Only drafts can
// change it.
func (c *Collection) SetTargetWarehouse(name string) error {
	if err := c.docStatus.RequireDraft(); err != nil {
		return err
	}
	c.targetWarehouse = name
	return nil
}

// ValidateDraft runs the save-time checks of a draft collection.
//
// Steps, in order:
//  1. at least one line
//  2. a referenced distribution must be submitted; the school is taken from
//     it when unset and must match otherwise, the vehicle is taken from it
//     when unset, and every line must belong to it
//  3. per line, no negative quantity and collected + damaged + lost must
//     not exceed the pending snapshot
//  4. source defaults to the distribution's target, else the field
//     warehouse; target defaults to the vehicle warehouse and is required
//     when good books come back
//  5. totals recomputed
func (c *Collection) ValidateDraft(vc ValidationContext) error {
	if err := c.docStatus.RequireDraft(); err != nil {
		return err
	}
	if len(c.items) == 0 {
		return kernel.ErrNoItems
	}

	if c.distributionID != nil {
		if err := c.checkDistribution(vc.Distribution); err != nil {
			return err
		}
	}

	itemErrs := make([]error, 0, len(c.items))
	for _, item := range c.items {
		itemErrs = append(itemErrs, item.validateQuantities())
	}
	if err := errors.Join(itemErrs...); err != nil {
		return err
	}

	c.calculateTotals()

	if c.sourceWarehouse == "" {
		if vc.Distribution != nil {
			c.sourceWarehouse = vc.Distribution.TargetWarehouse()
		} else {
			c.sourceWarehouse = vc.FieldWarehouse
		}
	}
	if c.sourceWarehouse == "" {
		return errs.NewValueIsRequiredError("source warehouse")
	}
	if c.targetWarehouse == "" {
		c.targetWarehouse = vc.VehicleWarehouse
	}
	if c.totalCollected.IsPositive() {
		if c.targetWarehouse == "" {
			return errs.NewValueIsRequiredError("target warehouse")
		}
		if err := kernel.CheckWarehouses(c.sourceWarehouse, c.targetWarehouse); err != nil {
			return err
		}
	}

	return nil
}

// ReturnLines returns the Material Transfer lines for good books, empty when
// nothing good came back.
func (c *Collection) ReturnLines() []stock.Line {
	var lines []stock.Line
	for _, item := range c.items {
		if item.quantities.Collected.IsPositive() {
			lines = append(lines, stock.Line{
				ItemCode:        item.itemCode,
				Qty:             item.quantities.Collected,
				SourceWarehouse: c.sourceWarehouse,
				TargetWarehouse: c.targetWarehouse,
			})
		}
	}
	return lines
}

// WriteOffLines returns the Material Issue lines for damaged and lost books,
// one line per item carrying damaged + lost.
func (c *Collection) WriteOffLines() []stock.Line {
	var lines []stock.Line
	for _, item := range c.items {
		if writtenOff := item.quantities.WrittenOff(); writtenOff.IsPositive() {
			lines = append(lines, stock.Line{
				ItemCode:        item.itemCode,
				Qty:             writtenOff,
				SourceWarehouse: c.sourceWarehouse,
			})
		}
	}
	return lines
}

// DistributionDeltas returns the combined quantity per line to add to the
// distribution on submit.
func (c *Collection) DistributionDeltas() []distribution.CollectionDelta {
	deltas := make([]distribution.CollectionDelta, 0, len(c.items))
	for _, item := range c.items {
		if total := item.quantities.Total(); total.IsPositive() {
			deltas = append(deltas, distribution.CollectionDelta{ItemCode: item.itemCode, Qty: total})
		}
	}
	return deltas
}

// ReversalDeltas returns DistributionDeltas negated, applied on cancel.
func (c *Collection) ReversalDeltas() []distribution.CollectionDelta {
	deltas := c.DistributionDeltas()
	for i := range deltas {
		deltas[i].Qty = deltas[i].Qty.Neg()
	}
	return deltas
}

// Submit records the stock entries posted for the collection and sets status
// Collected. Either entry may be nil.
func (c *Collection) Submit(returnEntryID, writeOffEntryID *kernel.UUID) error {
	next, err := c.docStatus.Submit()
	if err != nil {
		return err
	}

	c.docStatus = next
	c.returnEntryID = returnEntryID
	c.writeOffEntryID = writeOffEntryID
	c.status = Collected
	return nil
}

// Cancel marks the collection cancelled and returns the entries that must be
// reversed; either may be nil.
func (c *Collection) Cancel() (returnEntryID, writeOffEntryID *kernel.UUID, err error) {
	next, err := c.docStatus.Cancel()
	if err != nil {
		return nil, nil, err
	}

	c.docStatus = next
	c.status = Cancelled
	return c.returnEntryID, c.writeOffEntryID, nil
}

func (c *Collection) checkDistribution(d *distribution.Distribution) error {
	if err := d.Validate(); err != nil {
		return errs.NewObjectNotFoundErrorWithCause("distribution", c.distributionID.String(), err)
	}
	if err := d.DocStatus().RequireSubmitted(); err != nil {
		return fmt.Errorf("distribution %s: %w", d.ID(), err)
	}

	if c.schoolID.Validate() != nil {
		c.schoolID = d.SchoolID()
	} else if !c.schoolID.IsEqual(d.SchoolID()) {
		return fmt.Errorf("%w: %s", ErrSchoolMismatch, d.ID())
	}

	if c.vehicleID == nil && d.VehicleID() != nil {
		vehicleID := *d.VehicleID()
		c.vehicleID = &vehicleID
	}

	for _, item := range c.items {
		if _, ok := d.Item(item.itemCode); !ok {
			return fmt.Errorf("%w: %s", distribution.ErrItemNotInDistribution, item.itemCode)
		}
	}
	return nil
}

func (c *Collection) calculateTotals() {
	collected, damaged, lost := decimal.Zero, decimal.Zero, decimal.Zero
	for _, item := range c.items {
		collected = collected.Add(item.quantities.Collected)
		damaged = damaged.Add(item.quantities.Damaged)
		lost = lost.Add(item.quantities.Lost)
	}
	c.totalCollected = collected
	c.totalDamaged = damaged
	c.totalLost = lost
}
