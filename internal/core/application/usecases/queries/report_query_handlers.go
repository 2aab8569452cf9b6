package queries

import (
	"context"
	"strings"
	"time"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/ledger"
	"booksamples/internal/core/domain/model/stock"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type movementRow struct {
	Kind        int
	PostingDate time.Time
	PostedAt    *time.Time
	VoucherNo   string
	ItemCode    string
	ItemName    string
	ClassGrade  string
	School      string
	Vehicle     string
	Person      string
	Warehouse   string
	AreaZone    string
	Qty         decimal.Decimal
}

func voucherType(kind ledger.Kind) string {
	switch kind {
	case ledger.KindLoading:
		return stock.VoucherLoading
	case ledger.KindDistribution:
		return stock.VoucherDistribution
	case ledger.KindCollection:
		return stock.VoucherCollection
	default:
		return ""
	}
}

// conditions accumulates AND clauses with their arguments.
type conditions struct {
	clauses []string
	args    []any
}

func (c *conditions) add(clause string, args ...any) {
	c.clauses = append(c.clauses, clause)
	c.args = append(c.args, args...)
}

func (c *conditions) where() string {
	return " WHERE " + strings.Join(c.clauses, " AND ")
}

func dateConditions(c *conditions, column string, f ReportFilter) {
	if f.FromDate != nil {
		c.add(column+" >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		c.add(column+" <= ?", *f.ToDate)
	}
}

func itemConditions(c *conditions, alias string, f ReportFilter) {
	if f.ItemCode != "" {
		c.add(alias+".item_code = ?", f.ItemCode)
	}
	if f.ClassGrade != "" {
		c.add(alias+".class_grade = ?", f.ClassGrade)
	}
}

// schoolConditions filters by school and area. Loadings have neither.
func schoolConditions(c *conditions, f ReportFilter) {
	if f.SchoolID != nil {
		c.add("s.id = ?", f.SchoolID.Bytes())
	}
	if f.AreaZone != "" {
		c.add("s.area_zone = ?", f.AreaZone)
	}
}

// movementScope tunes how a report applies its filter to the movement
// sources.
type movementScope struct {
	// unassignedCollections keeps collections without a vehicle under a
	// vehicle filter. Only the vehicle ledger wants them.
	unassignedCollections bool
}

func loadingMovements(f ReportFilter, _ movementScope) (string, []any) {
	c := &conditions{}
	c.add("l.doc_status = ?", int(kernel.Submitted))
	dateConditions(c, "l.loading_date", f)
	itemConditions(c, "li", f)
	if f.VehicleID != nil {
		c.add("l.vehicle_id = ?", f.VehicleID.Bytes())
	}

	return `
		SELECT
			1 AS kind,
			l.loading_date AS posting_date,
			se.posted_at,
			CAST(l.id AS text) AS voucher_no,
			li.item_code,
			li.item_name,
			li.class_grade,
			'' AS school,
			COALESCE(v.number, '') AS vehicle,
			l.driver_name AS person,
			l.source_warehouse AS warehouse,
			'' AS area_zone,
			li.qty
		FROM loading_items li
		JOIN loadings l ON l.id = li.loading_id
		LEFT JOIN vehicles v ON v.id = l.vehicle_id
		LEFT JOIN stock_entries se ON se.id = l.stock_entry_id` + c.where(), c.args
}

func distributionMovements(f ReportFilter, _ movementScope) (string, []any) {
	c := &conditions{}
	c.add("d.doc_status = ?", int(kernel.Submitted))
	dateConditions(c, "d.distribution_date", f)
	itemConditions(c, "di", f)
	schoolConditions(c, f)
	if f.VehicleID != nil {
		c.add("d.vehicle_id = ?", f.VehicleID.Bytes())
	}

	return `
		SELECT
			2 AS kind,
			d.distribution_date AS posting_date,
			se.posted_at,
			CAST(d.id AS text) AS voucher_no,
			di.item_code,
			di.item_name,
			di.class_grade,
			COALESCE(s.name, '') AS school,
			COALESCE(v.number, '') AS vehicle,
			d.distributor_name AS person,
			d.source_warehouse AS warehouse,
			COALESCE(s.area_zone, '') AS area_zone,
			di.qty
		FROM distribution_items di
		JOIN distributions d ON d.id = di.distribution_id
		LEFT JOIN schools s ON s.id = d.school_id
		LEFT JOIN vehicles v ON v.id = d.vehicle_id
		LEFT JOIN stock_entries se ON se.id = d.stock_entry_id` + c.where(), c.args
}

// collectionMovements reads collected quantities. A standalone collection
// may have no vehicle; scope decides whether a vehicle filter keeps it.
func collectionMovements(f ReportFilter, scope movementScope) (string, []any) {
	c := &conditions{}
	c.add("c.doc_status = ?", int(kernel.Submitted))
	c.add("ci.qty_collected > 0")
	dateConditions(c, "c.collection_date", f)
	itemConditions(c, "ci", f)
	schoolConditions(c, f)
	switch {
	case f.VehicleID != nil && scope.unassignedCollections:
		c.add("(c.vehicle_id = ? OR c.vehicle_id IS NULL)", f.VehicleID.Bytes())
	case f.VehicleID != nil:
		c.add("c.vehicle_id = ?", f.VehicleID.Bytes())
	}

	return `
		SELECT
			3 AS kind,
			c.collection_date AS posting_date,
			COALESCE(rse.posted_at, wse.posted_at) AS posted_at,
			CAST(c.id AS text) AS voucher_no,
			ci.item_code,
			ci.item_name,
			ci.class_grade,
			COALESCE(s.name, '') AS school,
			COALESCE(v.number, '') AS vehicle,
			c.collector_name AS person,
			c.target_warehouse AS warehouse,
			COALESCE(s.area_zone, '') AS area_zone,
			ci.qty_collected AS qty
		FROM collection_items ci
		JOIN collections c ON c.id = ci.collection_id
		LEFT JOIN schools s ON s.id = c.school_id
		LEFT JOIN vehicles v ON v.id = c.vehicle_id
		LEFT JOIN stock_entries rse ON rse.id = c.stock_entry_id
		LEFT JOIN stock_entries wse ON wse.id = c.damaged_entry_id` + c.where(), c.args
}

// loadMovements reads the submitted item movements of the requested kinds.
// Movements of one day are ordered by the time their stock entry was posted.
func loadMovements(
	ctx context.Context,
	db *gorm.DB,
	f ReportFilter,
	scope movementScope,
	kinds ...ledger.Kind,
) ([]ledger.Movement, error) {
	sources := map[ledger.Kind]func(ReportFilter, movementScope) (string, []any){
		ledger.KindLoading:      loadingMovements,
		ledger.KindDistribution: distributionMovements,
		ledger.KindCollection:   collectionMovements,
	}

	parts := make([]string, 0, len(kinds))
	var args []any
	for _, kind := range kinds {
		sql, partArgs := sources[kind](f, scope)
		parts = append(parts, sql)
		args = append(args, partArgs...)
	}

	var rows []movementRow
	sql := strings.Join(parts, "\n\t\tUNION ALL") + "\n\t\tORDER BY posting_date, posted_at NULLS FIRST, voucher_no"
	if err := db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	movements := make([]ledger.Movement, 0, len(rows))
	for _, row := range rows {
		kind := ledger.Kind(row.Kind)
		var postedAt time.Time
		if row.PostedAt != nil {
			postedAt = *row.PostedAt
		}
		movements = append(movements, ledger.Movement{
			Kind:        kind,
			Date:        row.PostingDate,
			PostedAt:    postedAt,
			VoucherType: voucherType(kind),
			VoucherNo:   row.VoucherNo,
			ItemCode:    row.ItemCode,
			ItemName:    row.ItemName,
			ClassGrade:  row.ClassGrade,
			School:      row.School,
			Vehicle:     row.Vehicle,
			Person:      row.Person,
			Warehouse:   row.Warehouse,
			AreaZone:    row.AreaZone,
			Qty:         row.Qty,
		})
	}
	return movements, nil
}

// GetBookLedgerQueryHandler builds the Book Sample Ledger.
type GetBookLedgerQueryHandler struct {
	db *gorm.DB
}

func NewGetBookLedgerQueryHandler(db *gorm.DB) GetBookLedgerQueryHandler {
	return GetBookLedgerQueryHandler{db: db}
}

func (h GetBookLedgerQueryHandler) Handle(ctx context.Context, query ReportQuery) ([]ledger.BookRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	movements, err := loadMovements(ctx, h.db, query.Filter(), movementScope{},
		ledger.KindLoading, ledger.KindDistribution, ledger.KindCollection)
	if err != nil {
		return nil, err
	}
	return ledger.BookLedger(movements), nil
}

// GetSchoolLedgerQueryHandler builds the School Sample Ledger.
type GetSchoolLedgerQueryHandler struct {
	db *gorm.DB
}

func NewGetSchoolLedgerQueryHandler(db *gorm.DB) GetSchoolLedgerQueryHandler {
	return GetSchoolLedgerQueryHandler{db: db}
}

func (h GetSchoolLedgerQueryHandler) Handle(ctx context.Context, query ReportQuery) ([]ledger.SchoolRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	movements, err := loadMovements(ctx, h.db, query.Filter(), movementScope{},
		ledger.KindDistribution, ledger.KindCollection)
	if err != nil {
		return nil, err
	}
	return ledger.SchoolLedger(movements), nil
}

// GetVehicleLedgerQueryHandler builds the Vehicle Sample Ledger.
type GetVehicleLedgerQueryHandler struct {
	db *gorm.DB
}

func NewGetVehicleLedgerQueryHandler(db *gorm.DB) GetVehicleLedgerQueryHandler {
	return GetVehicleLedgerQueryHandler{db: db}
}

func (h GetVehicleLedgerQueryHandler) Handle(ctx context.Context, query ReportQuery) ([]ledger.VehicleRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	movements, err := loadMovements(ctx, h.db, query.Filter(), movementScope{unassignedCollections: true},
		ledger.KindLoading, ledger.KindDistribution, ledger.KindCollection)
	if err != nil {
		return nil, err
	}
	return ledger.VehicleLedger(movements), nil
}

// GetPendingCollectionQueryHandler builds the Pending Sample Collection
// report. Days overdue are counted against now().
type GetPendingCollectionQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGetPendingCollectionQueryHandler(db *gorm.DB, now func() time.Time) GetPendingCollectionQueryHandler {
	if now == nil {
		now = time.Now
	}
	return GetPendingCollectionQueryHandler{db: db, now: now}
}

type pendingCollectionRow struct {
	School             string
	DistributionID     string
	DistributionDate   time.Time
	ItemCode           string
	ItemName           string
	ClassGrade         string
	Qty                decimal.Decimal
	QtyCollected       decimal.Decimal
	QtyPending         decimal.Decimal
	ExpectedReturnDate *time.Time
	DistributorName    string
	AreaZone           string
}

func (h GetPendingCollectionQueryHandler) Handle(ctx context.Context, query ReportQuery) ([]ledger.PendingItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	f := query.Filter()

	c := &conditions{}
	c.add("d.doc_status = ?", int(kernel.Submitted))
	c.add("d.status IN ?", outstandingStatuses())
	c.add("di.qty_pending > 0")
	dateConditions(c, "d.distribution_date", f)
	itemConditions(c, "di", f)
	schoolConditions(c, f)

	var rows []pendingCollectionRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(s.name, '') AS school,
			CAST(d.id AS text) AS distribution_id,
			d.distribution_date,
			di.item_code,
			di.item_name,
			di.class_grade,
			di.qty,
			di.qty_collected,
			di.qty_pending,
			COALESCE(di.expected_return_date, d.expected_return_date) AS expected_return_date,
			d.distributor_name,
			COALESCE(s.area_zone, '') AS area_zone
		FROM distribution_items di
		JOIN distributions d ON d.id = di.distribution_id
		LEFT JOIN schools s ON s.id = d.school_id`+c.where()+`
		ORDER BY expected_return_date NULLS LAST, d.distribution_date, d.id, di.idx
	`, c.args...).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]ledger.PendingItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, ledger.PendingItem{
			School:             row.School,
			DistributionID:     row.DistributionID,
			DistributionDate:   row.DistributionDate,
			ItemCode:           row.ItemCode,
			ItemName:           row.ItemName,
			ClassGrade:         row.ClassGrade,
			QtyDistributed:     row.Qty,
			QtyCollected:       row.QtyCollected,
			QtyPending:         row.QtyPending,
			ExpectedReturnDate: row.ExpectedReturnDate,
			DistributorName:    row.DistributorName,
			AreaZone:           row.AreaZone,
		})
	}
	items = ledger.WithDaysOverdue(items, h.now())

	if !f.OverdueOnly {
		return items, nil
	}
	overdue := make([]ledger.PendingItem, 0, len(items))
	for _, item := range items {
		if item.DaysOverdue > 0 {
			overdue = append(overdue, item)
		}
	}
	return overdue, nil
}
