package ledger

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Kind tells which stage of the sample cycle produced a movement.
type Kind int

const (
	KindUnknown Kind = iota
	KindLoading
	KindDistribution
	KindCollection
)

// Movement is one item line of a submitted loading, distribution or
// collection, as read for the ledger reports. Qty is unsigned; its meaning
// depends on Kind and on the report. PostedAt orders movements of the same
// date; it is zero when the posting time is unknown.
type Movement struct {
	Kind        Kind            `json:"kind"`
	Date        time.Time       `json:"date"`
	PostedAt    time.Time       `json:"posted_at"`
	VoucherType string          `json:"voucher_type"`
	VoucherNo   string          `json:"voucher_no"`
	ItemCode    string          `json:"item_code"`
	ItemName    string          `json:"item_name"`
	ClassGrade  string          `json:"class_grade"`
	School      string          `json:"school"`
	Vehicle     string          `json:"vehicle"`
	Person      string          `json:"person"`
	Warehouse   string          `json:"warehouse"`
	AreaZone    string          `json:"area_zone"`
	Qty         decimal.Decimal `json:"qty"`
}

// BookRow is a Book Sample Ledger row. Balance runs per item code.
type BookRow struct {
	Movement
	QtyIn   decimal.Decimal `json:"qty_in"`
	QtyOut  decimal.Decimal `json:"qty_out"`
	Balance decimal.Decimal `json:"balance"`
}

// SchoolRow is a School Sample Ledger row. Balance runs per school and item.
type SchoolRow struct {
	Movement
	Given    decimal.Decimal `json:"given"`
	Returned decimal.Decimal `json:"returned"`
	Balance  decimal.Decimal `json:"balance"`
}

// VehicleRow is a Vehicle Sample Ledger row. Balance runs per vehicle.
type VehicleRow struct {
	Movement
	Loaded      decimal.Decimal `json:"loaded"`
	Distributed decimal.Decimal `json:"distributed"`
	Collected   decimal.Decimal `json:"collected"`
	Balance     decimal.Decimal `json:"balance"`
}

// BookLedger merges movements by (date, posted at, voucher no) and runs a balance of
// in - out per item. Loadings and distributions count as out, collections
// as in.
func BookLedger(movements []Movement) []BookRow {
	sorted := sortByDate(movements)

	balances := make(map[string]decimal.Decimal)
	rows := make([]BookRow, 0, len(sorted))
	for _, m := range sorted {
		row := BookRow{Movement: m, QtyIn: decimal.Zero, QtyOut: decimal.Zero}
		switch m.Kind {
		case KindCollection:
			row.QtyIn = m.Qty
		case KindLoading, KindDistribution:
			row.QtyOut = m.Qty
		}

		balances[m.ItemCode] = balances[m.ItemCode].Add(row.QtyIn).Sub(row.QtyOut)
		row.Balance = balances[m.ItemCode]
		rows = append(rows, row)
	}
	return rows
}

// SchoolLedger merges distributions and collections by (school, date,
// posted at, voucher no) and runs a balance of given - returned per school and item.
// Loadings are ignored.
func SchoolLedger(movements []Movement) []SchoolRow {
	var relevant []Movement
	for _, m := range movements {
		if m.Kind == KindDistribution || m.Kind == KindCollection {
			relevant = append(relevant, m)
		}
	}
	slices.SortStableFunc(relevant, func(a, b Movement) int {
		return cmp.Or(
			cmp.Compare(a.School, b.School),
			a.Date.Compare(b.Date),
			a.PostedAt.Compare(b.PostedAt),
			cmp.Compare(a.VoucherNo, b.VoucherNo),
		)
	})

	type key struct{ school, item string }
	balances := make(map[key]decimal.Decimal)
	rows := make([]SchoolRow, 0, len(relevant))
	for _, m := range relevant {
		row := SchoolRow{Movement: m, Given: decimal.Zero, Returned: decimal.Zero}
		if m.Kind == KindDistribution {
			row.Given = m.Qty
		} else {
			row.Returned = m.Qty
		}

		k := key{m.School, m.ItemCode}
		balances[k] = balances[k].Add(row.Given).Sub(row.Returned)
		row.Balance = balances[k]
		rows = append(rows, row)
	}
	return rows
}

// VehicleLedger merges movements by (date, posted at, voucher no) and runs a balance of
// loaded - distributed + collected per vehicle.
func VehicleLedger(movements []Movement) []VehicleRow {
	sorted := sortByDate(movements)

	balances := make(map[string]decimal.Decimal)
	rows := make([]VehicleRow, 0, len(sorted))
	for _, m := range sorted {
		row := VehicleRow{Movement: m, Loaded: decimal.Zero, Distributed: decimal.Zero, Collected: decimal.Zero}
		switch m.Kind {
		case KindLoading:
			row.Loaded = m.Qty
		case KindDistribution:
			row.Distributed = m.Qty
		case KindCollection:
			row.Collected = m.Qty
		}

		balances[m.Vehicle] = balances[m.Vehicle].Add(row.Loaded).Sub(row.Distributed).Add(row.Collected)
		row.Balance = balances[m.Vehicle]
		rows = append(rows, row)
	}
	return rows
}

func sortByDate(movements []Movement) []Movement {
	sorted := slices.Clone(movements)
	slices.SortStableFunc(sorted, func(a, b Movement) int {
		return cmp.Or(
			a.Date.Compare(b.Date),
			a.PostedAt.Compare(b.PostedAt),
			cmp.Compare(a.VoucherNo, b.VoucherNo),
		)
	})
	return sorted
}
