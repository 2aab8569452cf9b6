package loading

import (
	"errors"
	"time"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/stock"
	"booksamples/internal/core/domain/model/vehicle"
	"booksamples/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrLoadingIsNotConstructed is returned when a Loading was not created
// through NewLoading or RestoreLoading.
var ErrLoadingIsNotConstructed = errors.New("Loading must be created via NewLoading constructor")

// Loading moves sample books from a central warehouse into a vehicle's
// warehouse. It is the first stage of the sample cycle:
//
//	Loading (warehouse → van) → Distribution (van → field) → Collection (field → warehouse)
//
// Invariants:
//   - at least one line, every quantity positive
//   - target warehouse resolved (from the vehicle when not given)
//   - source and target warehouse differ
//   - total qty equals the sum of line quantities
//
// Stock moves only on Submit, through a single Material Transfer stock entry.
type Loading struct {
	id              kernel.UUID
	vehicleID       kernel.UUID
	driverName      string
	loadingDate     time.Time
	sourceWarehouse string
	targetWarehouse string
	items           []Item
	totalQty        decimal.Decimal
	stockEntryID    *kernel.UUID
	docStatus       kernel.DocStatus
	status          Status

	isConstructed bool
}

// NewLoading creates a draft loading.
//
// Parameters:
//   - id: identifier of the new document
//   - vehicleID: the van being loaded
//   - driverName: free text, shown on the vehicle ledger
//   - loadingDate: posting date of the transfer
//   - sourceWarehouse: central warehouse the books leave
//   - targetWarehouse: may be empty, ValidateDraft resolves it from the vehicle
//   - items: the lines to load
//
// Example:
//
//	item, _ := loading.NewItem("MATH-5", "Maths Workbook 5", "Class 5", decimal.NewFromInt(50))
//	l, err := loading.NewLoading(kernel.NewUUID(), vanID, "Ravi", time.Now(), "Main Store", "", []loading.Item{item})
//	if err != nil {
//	    return err
//	}
//	warnings, err := l.ValidateDraft(van.Warehouse(), balances)
func NewLoading(
	id kernel.UUID,
	vehicleID kernel.UUID,
	driverName string,
	loadingDate time.Time,
	sourceWarehouse string,
	targetWarehouse string,
	items []Item,
) (*Loading, error) {
	return RestoreLoading(id, vehicleID, driverName, loadingDate, sourceWarehouse, targetWarehouse,
		items, nil, kernel.Draft, Draft)
}

// RestoreLoading rebuilds a loading from persistence. Totals are recomputed
// from the lines.
func RestoreLoading(
	id kernel.UUID,
	vehicleID kernel.UUID,
	driverName string,
	loadingDate time.Time,
	sourceWarehouse string,
	targetWarehouse string,
	items []Item,
	stockEntryID *kernel.UUID,
	docStatus kernel.DocStatus,
	status Status,
) (*Loading, error) {
	l := &Loading{
		driverName:      driverName,
		loadingDate:     kernel.DateOf(loadingDate),
		targetWarehouse: targetWarehouse,
		stockEntryID:    stockEntryID,
		isConstructed:   true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setVehicleID(vehicleID),
		l.setSourceWarehouse(sourceWarehouse),
		l.setDocStatus(docStatus, status),
	); err != nil {
		return nil, err
	}

	l.items = append([]Item(nil), items...)
	l.calculateTotals()
	return l, nil
}

// Validate ensures the loading was created through its constructor.
func (l *Loading) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLoadingIsNotConstructed
	}
	return nil
}

// ID returns the loading identifier.
func (l *Loading) ID() kernel.UUID {
	return l.id
}

// VehicleID returns the van being loaded.
func (l *Loading) VehicleID() kernel.UUID {
	return l.vehicleID
}

// DriverName returns the driver recorded on the loading.
func (l *Loading) DriverName() string {
	return l.driverName
}

// LoadingDate returns the posting date.
func (l *Loading) LoadingDate() time.Time {
	return l.loadingDate
}

// SourceWarehouse returns the warehouse the books leave.
func (l *Loading) SourceWarehouse() string {
	return l.sourceWarehouse
}

// TargetWarehouse returns the vehicle warehouse, empty until resolved.
func (l *Loading) TargetWarehouse() string {
	return l.targetWarehouse
}

// Items returns a copy of the loading lines.
func (l *Loading) Items() []Item {
	return append([]Item(nil), l.items...)
}

// TotalQty returns the sum of line quantities.
func (l *Loading) TotalQty() decimal.Decimal {
	return l.totalQty
}

// StockEntryID returns the transfer posted on submit, nil before that.
func (l *Loading) StockEntryID() *kernel.UUID {
	return l.stockEntryID
}

// DocStatus returns the document lifecycle state.
func (l *Loading) DocStatus() kernel.DocStatus {
	return l.docStatus
}

// Status returns the business status.
func (l *Loading) Status() Status {
	return l.status
}

// ValidateDraft runs the save-time checks of a draft loading.
//
// Steps, in order:
//  1. at least one line, every quantity > 0
//  2. target warehouse taken from vehicleWarehouse when empty
//  3. source and target warehouse differ
//  4. total qty recomputed
//  5. per line, on-hand at the source is recorded as the available qty and
//     a warning is returned when it is lower than the requested quantity
//
// Hard failures are returned as the error. Warnings never block the save.
func (l *Loading) ValidateDraft(vehicleWarehouse string, onHand stock.Balances) ([]kernel.Warning, error) {
	if err := l.docStatus.RequireDraft(); err != nil {
		return nil, err
	}
	if len(l.items) == 0 {
		return nil, kernel.ErrNoItems
	}

	qtyErrs := make([]error, 0, len(l.items))
	for _, item := range l.items {
		qtyErrs = append(qtyErrs, item.validateQty())
	}
	if err := errors.Join(qtyErrs...); err != nil {
		return nil, err
	}

	if l.targetWarehouse == "" {
		if vehicleWarehouse == "" {
			return nil, vehicle.ErrVehicleHasNoWarehouse
		}
		l.targetWarehouse = vehicleWarehouse
	}
	if err := kernel.CheckWarehouses(l.sourceWarehouse, l.targetWarehouse); err != nil {
		return nil, err
	}

	l.calculateTotals()

	var warnings []kernel.Warning
	for i := range l.items {
		available := onHand.Qty(l.items[i].itemCode, l.sourceWarehouse)
		l.items[i].availableQty = available
		if available.LessThan(l.items[i].qty) {
			warnings = append(warnings, kernel.InsufficientStockWarning(l.items[i].itemCode, available, l.items[i].qty))
		}
	}

	return warnings, nil
}

// TransferLines returns the lines of the Material Transfer posted on submit.
func (l *Loading) TransferLines() []stock.Line {
	lines := make([]stock.Line, 0, len(l.items))
	for _, item := range l.items {
		lines = append(lines, stock.Line{
			ItemCode:        item.itemCode,
			Qty:             item.qty,
			SourceWarehouse: l.sourceWarehouse,
			TargetWarehouse: l.targetWarehouse,
		})
	}
	return lines
}

// Submit records the transfer that moved the books and sets status Loaded.
// The loading must have passed ValidateDraft.
func (l *Loading) Submit(stockEntryID kernel.UUID) error {
	if err := stockEntryID.Validate(); err != nil {
		return err
	}
	if l.targetWarehouse == "" {
		return errs.NewValueIsRequiredError("target warehouse")
	}

	next, err := l.docStatus.Submit()
	if err != nil {
		return err
	}

	l.docStatus = next
	l.stockEntryID = &stockEntryID
	l.status = Loaded
	return nil
}

// Cancel marks the loading cancelled and returns the transfer that must be
// reversed, nil when none was recorded.
func (l *Loading) Cancel() (*kernel.UUID, error) {
	next, err := l.docStatus.Cancel()
	if err != nil {
		return nil, err
	}

	l.docStatus = next
	l.status = Cancelled
	return l.stockEntryID, nil
}

// UpdateStatus sets the business status of a submitted loading.
//
// Only Loaded, In Transit and Returned are accepted. On failure the status
// is left unchanged.
func (l *Loading) UpdateStatus(status Status) error {
	if err := l.docStatus.RequireSubmitted(); err != nil {
		return err
	}
	if err := status.validateSettable(); err != nil {
		return err
	}

	l.status = status
	return nil
}

func (l *Loading) calculateTotals() {
	total := decimal.Zero
	for _, item := range l.items {
		total = total.Add(item.qty)
	}
	l.totalQty = total
}

func (l *Loading) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Loading) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vehicle", err)
	}
	l.vehicleID = id
	return nil
}

func (l *Loading) setSourceWarehouse(warehouse string) error {
	if warehouse == "" {
		return errs.NewValueIsRequiredError("source warehouse")
	}
	l.sourceWarehouse = warehouse
	return nil
}

func (l *Loading) setDocStatus(docStatus kernel.DocStatus, status Status) error {
	if err := errors.Join(docStatus.Validate(), status.Validate()); err != nil {
		return err
	}
	l.docStatus = docStatus
	l.status = status
	return nil
}
