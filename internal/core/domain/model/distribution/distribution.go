package distribution

import (
	"errors"
	"fmt"
	"time"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/stock"
	"booksamples/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrDistributionIsNotConstructed is returned when a Distribution was not
	// created through NewDistribution or RestoreDistribution.
	ErrDistributionIsNotConstructed = errors.New("Distribution must be created via NewDistribution constructor")

	// ErrItemNotInDistribution is returned when a collection delta names an
	// item the distribution does not carry.
	ErrItemNotInDistribution = errors.New("item is not part of the distribution")

	// ErrDuplicateItem is returned when a draft lists the same item code on
	// more than one line. Collections settle pending quantities by item code.
	ErrDuplicateItem = errors.New("item appears more than once in the distribution")
)

// Header carries the document-level fields of a distribution.
type Header struct {
	SchoolID           kernel.UUID
	VehicleID          *kernel.UUID
	LoadingID          *kernel.UUID
	DistributorName    string
	DistributionDate   time.Time
	ExpectedReturnDate *time.Time
	SourceWarehouse    string
	TargetWarehouse    string
}

// ValidationContext holds the reference data ValidateDraft needs.
type ValidationContext struct {
	// LoadingVehicleID and LoadingWarehouse describe the vehicle of the
	// linked loading. Both are empty when no loading is linked.
	LoadingVehicleID *kernel.UUID
	LoadingWarehouse string
	// VehicleWarehouse is the warehouse of the distribution's own vehicle.
	VehicleWarehouse string
	// FieldWarehouse is the default target, "Samples in Field".
	FieldWarehouse string
	// OnHand must cover every item at the resolved source warehouse.
	OnHand stock.Balances
}

// CollectionDelta is a signed change of collected quantity for one item.
type CollectionDelta struct {
	ItemCode string
	Qty      decimal.Decimal
}

// Distribution transfers sample books from a vehicle warehouse to the
// "Samples in Field" warehouse on behalf of a school, and then tracks how
// much of them came back through collections.
//
// Invariants:
//   - pending = qty - collected per line, 0 ≤ collected ≤ qty
//   - totals equal the sums over lines
//   - overall status is derived, never set directly (see DeriveStatus)
//
// Version is the optimistic lock token checked by the repository on update.
type Distribution struct {
	id                 kernel.UUID
	schoolID           kernel.UUID
	vehicleID          *kernel.UUID
	loadingID          *kernel.UUID
	distributorName    string
	distributionDate   time.Time
	expectedReturnDate *time.Time
	sourceWarehouse    string
	targetWarehouse    string
	items              []Item
	totalDistributed   decimal.Decimal
	totalCollected     decimal.Decimal
	totalPending       decimal.Decimal
	stockEntryID       *kernel.UUID
	docStatus          kernel.DocStatus
	status             Status
	version            int

	isConstructed bool
}

// NewDistribution creates a draft distribution at version 1.
//
// Parameters:
//   - id: identifier of the new document
//   - header: school, optional vehicle/loading, dates and warehouses
//   - items: the lines handed to the school
//
// Example:
//
//	item, _ := distribution.NewItem("MATH-5", "Maths Workbook 5", "Class 5", "Maths", decimal.NewFromInt(5), nil)
//	d, err := distribution.NewDistribution(kernel.NewUUID(), distribution.Header{
//	    SchoolID:         schoolID,
//	    LoadingID:        &loadingID,
//	    DistributionDate: time.Now(),
//	}, []distribution.Item{item})
func NewDistribution(id kernel.UUID, header Header, items []Item) (*Distribution, error) {
	return RestoreDistribution(id, header, items, nil, kernel.Draft, 1)
}

// RestoreDistribution rebuilds a distribution from persistence. Totals, line
// pending quantities and the overall status are recomputed.
func RestoreDistribution(
	id kernel.UUID,
	header Header,
	items []Item,
	stockEntryID *kernel.UUID,
	docStatus kernel.DocStatus,
	version int,
) (*Distribution, error) {
	d := &Distribution{
		vehicleID:          header.VehicleID,
		loadingID:          header.LoadingID,
		distributorName:    header.DistributorName,
		distributionDate:   kernel.DateOf(header.DistributionDate),
		expectedReturnDate: dateOrNil(header.ExpectedReturnDate),
		sourceWarehouse:    header.SourceWarehouse,
		targetWarehouse:    header.TargetWarehouse,
		stockEntryID:       stockEntryID,
		version:            version,
		isConstructed:      true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setSchoolID(header.SchoolID),
		d.setDocStatus(docStatus),
	); err != nil {
		return nil, err
	}

	d.items = append([]Item(nil), items...)
	d.calculateTotals()
	d.status = DeriveStatus(d.docStatus, d.totalPending, d.totalCollected)
	return d, nil
}

// Validate ensures the distribution was created through its constructor.
func (d *Distribution) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDistributionIsNotConstructed
	}
	return nil
}

func (d *Distribution) ID() kernel.UUID {
	return d.id
}

func (d *Distribution) SchoolID() kernel.UUID {
	return d.schoolID
}

// VehicleID returns the van, nil when neither given nor inferred.
func (d *Distribution) VehicleID() *kernel.UUID {
	return d.vehicleID
}

// LoadingID returns the linked loading, nil when none.
func (d *Distribution) LoadingID() *kernel.UUID {
	return d.loadingID
}

func (d *Distribution) DistributorName() string {
	return d.distributorName
}

func (d *Distribution) DistributionDate() time.Time {
	return d.distributionDate
}

func (d *Distribution) ExpectedReturnDate() *time.Time {
	return d.expectedReturnDate
}

func (d *Distribution) SourceWarehouse() string {
	return d.sourceWarehouse
}

func (d *Distribution) TargetWarehouse() string {
	return d.targetWarehouse
}

// Items returns a copy of the distribution lines.
func (d *Distribution) Items() []Item {
	return append([]Item(nil), d.items...)
}

func (d *Distribution) TotalDistributed() decimal.Decimal {
	return d.totalDistributed
}

func (d *Distribution) TotalCollected() decimal.Decimal {
	return d.totalCollected
}

func (d *Distribution) TotalPending() decimal.Decimal {
	return d.totalPending
}

func (d *Distribution) StockEntryID() *kernel.UUID {
	return d.stockEntryID
}

func (d *Distribution) DocStatus() kernel.DocStatus {
	return d.docStatus
}

func (d *Distribution) Status() Status {
	return d.status
}

// Version returns the optimistic lock token the aggregate was loaded with.
func (d *Distribution) Version() int {
	return d.version
}

// AdvanceVersion is called by the repository once an update has been
// persisted under the current version.
func (d *Distribution) AdvanceVersion() {
	d.version++
}

// Item returns the first line for itemCode.
func (d *Distribution) Item(itemCode string) (Item, bool) {
	for _, item := range d.items {
		if item.itemCode == itemCode {
			return item, true
		}
	}
	return Item{}, false
}

// ValidateDraft runs the save-time checks of a draft distribution.
//
// Steps, in order:
//  1. at least one line, every quantity > 0
//  2. source warehouse and vehicle inferred from the linked loading, else
//     the source falls back to the distribution's own vehicle warehouse
//  3. target defaults to the field warehouse, source and target differ
//  4. the header expected return date is copied to lines without one
//  5. totals recomputed
//  6. per line, on-hand at the source is recorded as the available van qty
//     and a warning is returned when it is lower than the line quantity
//  7. per line collection status and overall status refreshed
func (d *Distribution) ValidateDraft(vc ValidationContext) ([]kernel.Warning, error) {
	if err := d.docStatus.RequireDraft(); err != nil {
		return nil, err
	}
	if len(d.items) == 0 {
		return nil, kernel.ErrNoItems
	}

	qtyErrs := make([]error, 0, len(d.items))
	for _, item := range d.items {
		qtyErrs = append(qtyErrs, item.validateQty())
	}
	if err := errors.Join(qtyErrs...); err != nil {
		return nil, err
	}
	if err := d.checkDuplicateItems(); err != nil {
		return nil, err
	}

	if err := d.resolveWarehouses(vc); err != nil {
		return nil, err
	}

	if d.expectedReturnDate != nil {
		for i := range d.items {
			if d.items[i].expectedReturnDate == nil {
				date := *d.expectedReturnDate
				d.items[i].expectedReturnDate = &date
			}
		}
	}

	d.calculateTotals()

	var warnings []kernel.Warning
	for i := range d.items {
		available := vc.OnHand.Qty(d.items[i].itemCode, d.sourceWarehouse)
		d.items[i].availableQtyInVan = available
		if available.LessThan(d.items[i].qty) {
			warnings = append(warnings, kernel.InsufficientStockWarning(d.items[i].itemCode, available, d.items[i].qty))
		}
	}

	for i := range d.items {
		d.items[i].collectionStatus = deriveCollectionStatus(d.items[i].qty, d.items[i].qtyCollected)
	}
	d.status = DeriveStatus(d.docStatus, d.totalPending, d.totalCollected)

	return warnings, nil
}

func (d *Distribution) checkDuplicateItems() error {
	seen := make(map[string]int, len(d.items))
	var dupErrs []error
	for _, item := range d.items {
		seen[item.itemCode]++
		if seen[item.itemCode] == 2 {
			dupErrs = append(dupErrs, fmt.Errorf("%w: %s", ErrDuplicateItem, item.itemCode))
		}
	}
	return errors.Join(dupErrs...)
}

// TransferLines returns the lines of the Material Transfer posted on submit.
func (d *Distribution) TransferLines() []stock.Line {
	lines := make([]stock.Line, 0, len(d.items))
	for _, item := range d.items {
		lines = append(lines, stock.Line{
			ItemCode:        item.itemCode,
			Qty:             item.qty,
			SourceWarehouse: d.sourceWarehouse,
			TargetWarehouse: d.targetWarehouse,
		})
	}
	return lines
}

// Submit records the transfer that moved the books and sets status Distributed.
func (d *Distribution) Submit(stockEntryID kernel.UUID) error {
	if err := stockEntryID.Validate(); err != nil {
		return err
	}
	if d.sourceWarehouse == "" || d.targetWarehouse == "" {
		return errs.NewValueIsRequiredError("warehouse")
	}

	next, err := d.docStatus.Submit()
	if err != nil {
		return err
	}

	d.docStatus = next
	d.stockEntryID = &stockEntryID
	d.status = DeriveStatus(d.docStatus, d.totalPending, d.totalCollected)
	return nil
}

// Cancel marks the distribution cancelled and returns the transfer that must
// be reversed, nil when none was recorded.
func (d *Distribution) Cancel() (*kernel.UUID, error) {
	next, err := d.docStatus.Cancel()
	if err != nil {
		return nil, err
	}

	d.docStatus = next
	d.status = Cancelled
	return d.stockEntryID, nil
}

// UpdateCollection applies signed collected-quantity deltas coming from a
// collection submit (positive) or cancel (negative).
//
// A delta is applied to every line carrying the item code. The whole batch is
// rejected, and nothing changes, when an item is unknown or a line would end
// up with collected below 0 or above its quantity.
//
// A line that was Collected or Partial keeps its status when a negative delta
// brings collected back to 0; only positive collected values move the line
// status. Totals and the overall status are always recomputed.
func (d *Distribution) UpdateCollection(deltas []CollectionDelta) error {
	if err := d.docStatus.RequireSubmitted(); err != nil {
		return err
	}

	next := append([]Item(nil), d.items...)
	for _, delta := range deltas {
		matched := false
		for i := range next {
			if next[i].itemCode != delta.ItemCode {
				continue
			}
			matched = true

			collected := next[i].qtyCollected.Add(delta.Qty)
			if collected.IsNegative() || collected.GreaterThan(next[i].qty) {
				return errs.NewValueIsOutOfRangeError("qty collected for "+delta.ItemCode,
					collected, decimal.Zero, next[i].qty)
			}
			next[i].qtyCollected = collected
			next[i].qtyPending = next[i].qty.Sub(collected)
		}
		if !matched {
			return fmt.Errorf("%w: %s", ErrItemNotInDistribution, delta.ItemCode)
		}
	}

	for i := range next {
		if next[i].qtyCollected.IsPositive() {
			next[i].collectionStatus = deriveCollectionStatus(next[i].qty, next[i].qtyCollected)
		}
	}

	d.items = next
	d.calculateTotals()
	d.status = DeriveStatus(d.docStatus, d.totalPending, d.totalCollected)
	return nil
}

// PendingItems returns the lines with a positive pending quantity.
func (d *Distribution) PendingItems() []Item {
	var pending []Item
	for _, item := range d.items {
		if item.HasPending() {
			pending = append(pending, item)
		}
	}
	return pending
}

func (d *Distribution) resolveWarehouses(vc ValidationContext) error {
	if d.loadingID != nil {
		if d.sourceWarehouse == "" {
			d.sourceWarehouse = vc.LoadingWarehouse
		}
		if d.vehicleID == nil && vc.LoadingVehicleID != nil {
			vehicleID := *vc.LoadingVehicleID
			d.vehicleID = &vehicleID
		}
	}
	if d.sourceWarehouse == "" {
		d.sourceWarehouse = vc.VehicleWarehouse
	}
	if d.sourceWarehouse == "" {
		return errs.NewValueIsRequiredError("source warehouse")
	}

	if d.targetWarehouse == "" {
		d.targetWarehouse = vc.FieldWarehouse
	}
	if d.targetWarehouse == "" {
		return errs.NewValueIsRequiredError("target warehouse")
	}

	return kernel.CheckWarehouses(d.sourceWarehouse, d.targetWarehouse)
}

func (d *Distribution) calculateTotals() {
	distributed, collected := decimal.Zero, decimal.Zero
	for i := range d.items {
		d.items[i].qtyPending = d.items[i].qty.Sub(d.items[i].qtyCollected)
		distributed = distributed.Add(d.items[i].qty)
		collected = collected.Add(d.items[i].qtyCollected)
	}
	d.totalDistributed = distributed
	d.totalCollected = collected
	d.totalPending = distributed.Sub(collected)
}

func (d *Distribution) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Distribution) setSchoolID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("school", err)
	}
	d.schoolID = id
	return nil
}

func (d *Distribution) setDocStatus(docStatus kernel.DocStatus) error {
	if err := docStatus.Validate(); err != nil {
		return err
	}
	d.docStatus = docStatus
	return nil
}

func dateOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	date := kernel.DateOf(*t)
	return &date
}
