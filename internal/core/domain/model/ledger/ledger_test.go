package ledger_test

import (
	"testing"
	"time"

	"booksamples/internal/core/domain/model/ledger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func day(d int) time.Time { return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC) }

func scenario() []ledger.Movement {
	// Deliberately out of order: the reports sort.
	return []ledger.Movement{
		{Kind: ledger.KindCollection, Date: day(10), VoucherNo: "C-1", ItemCode: "MATH-5", School: "Green Valley", Vehicle: "KA01", Qty: qty(10)},
		{Kind: ledger.KindLoading, Date: day(1), VoucherNo: "L-1", ItemCode: "MATH-5", Vehicle: "KA01", Qty: qty(20)},
		{Kind: ledger.KindDistribution, Date: day(3), VoucherNo: "D-1", ItemCode: "MATH-5", School: "Green Valley", Vehicle: "KA01", Qty: qty(15)},
	}
}

func balances[R any](rows []R, balance func(R) decimal.Decimal) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, balance(r).String())
	}
	return out
}

func TestBookLedger(t *testing.T) {
	rows := ledger.BookLedger(scenario())

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"L-1", "D-1", "C-1"}, []string{rows[0].VoucherNo, rows[1].VoucherNo, rows[2].VoucherNo})
	assert.Equal(t, []string{"-20", "-35", "-25"}, balances(rows, func(r ledger.BookRow) decimal.Decimal { return r.Balance }))
	assert.True(t, rows[2].QtyIn.Equal(qty(10)))
	assert.True(t, rows[2].QtyOut.IsZero())
}

func TestBookLedger_BalancePerItem(t *testing.T) {
	rows := ledger.BookLedger([]ledger.Movement{
		{Kind: ledger.KindLoading, Date: day(1), VoucherNo: "L-1", ItemCode: "MATH-5", Qty: qty(5)},
		{Kind: ledger.KindLoading, Date: day(1), VoucherNo: "L-1", ItemCode: "SCI-5", Qty: qty(7)},
		{Kind: ledger.KindCollection, Date: day(2), VoucherNo: "C-1", ItemCode: "SCI-5", Qty: qty(2)},
	})

	assert.Equal(t, []string{"-5", "-7", "-5"}, balances(rows, func(r ledger.BookRow) decimal.Decimal { return r.Balance }))
}

func TestSchoolLedger(t *testing.T) {
	movements := append(scenario(),
		ledger.Movement{Kind: ledger.KindDistribution, Date: day(2), VoucherNo: "D-0", ItemCode: "MATH-5", School: "Blue Hill", Qty: qty(4)})

	rows := ledger.SchoolLedger(movements)

	require.Len(t, rows, 3)
	assert.Equal(t, "Blue Hill", rows[0].School)
	assert.Equal(t, []string{"4", "15", "5"}, balances(rows, func(r ledger.SchoolRow) decimal.Decimal { return r.Balance }))
	assert.True(t, rows[2].Returned.Equal(qty(10)))
}

func TestVehicleLedger(t *testing.T) {
	movements := append(scenario(),
		ledger.Movement{Kind: ledger.KindLoading, Date: day(2), VoucherNo: "L-2", ItemCode: "MATH-5", Vehicle: "KA02", Qty: qty(8)})

	rows := ledger.VehicleLedger(movements)

	require.Len(t, rows, 4)
	assert.Equal(t, []string{"20", "8", "5", "15"}, balances(rows, func(r ledger.VehicleRow) decimal.Decimal { return r.Balance }))
}

func TestVehicleLedger_SameDayFollowsPostingTime(t *testing.T) {
	morning := day(5).Add(9 * time.Hour)
	noon := day(5).Add(12 * time.Hour)

	rows := ledger.VehicleLedger([]ledger.Movement{
		{Kind: ledger.KindDistribution, Date: day(5), PostedAt: noon, VoucherNo: "0b9e", ItemCode: "MATH-5", Vehicle: "KA01", Qty: qty(15)},
		{Kind: ledger.KindLoading, Date: day(5), PostedAt: morning, VoucherNo: "f3a1", ItemCode: "MATH-5", Vehicle: "KA01", Qty: qty(20)},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"f3a1", "0b9e"}, []string{rows[0].VoucherNo, rows[1].VoucherNo})
	assert.Equal(t, []string{"20", "5"}, balances(rows, func(r ledger.VehicleRow) decimal.Decimal { return r.Balance }))
}

func TestSchoolLedger_SameDayFollowsPostingTime(t *testing.T) {
	rows := ledger.SchoolLedger([]ledger.Movement{
		{Kind: ledger.KindCollection, Date: day(5), PostedAt: day(5).Add(15 * time.Hour), VoucherNo: "0aaa", ItemCode: "MATH-5", School: "Green Valley", Qty: qty(3)},
		{Kind: ledger.KindDistribution, Date: day(5), PostedAt: day(5).Add(8 * time.Hour), VoucherNo: "ffff", ItemCode: "MATH-5", School: "Green Valley", Qty: qty(10)},
	})

	assert.Equal(t, []string{"10", "7"}, balances(rows, func(r ledger.SchoolRow) decimal.Decimal { return r.Balance }))
}

func TestDaysOverdue(t *testing.T) {
	today := time.Date(2024, 7, 10, 18, 45, 0, 0, time.UTC)
	past := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	future := time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 9, ledger.DaysOverdue(&past, today))
	assert.Equal(t, 0, ledger.DaysOverdue(&future, today))
	assert.Equal(t, 0, ledger.DaysOverdue(&today, today))
	assert.Equal(t, 0, ledger.DaysOverdue(nil, today))
}

func TestSummarizeOverdue(t *testing.T) {
	past := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	items := ledger.WithDaysOverdue([]ledger.PendingItem{
		{School: "Green Valley", ItemCode: "MATH-5", QtyPending: qty(5), ExpectedReturnDate: &past},
		{School: "Blue Hill", ItemCode: "MATH-5", QtyPending: qty(2)},
		{School: "Green Valley", ItemCode: "SCI-5", QtyPending: qty(3), ExpectedReturnDate: &past},
	}, time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC))

	summaries := ledger.SummarizeOverdue(items)

	require.Len(t, summaries, 1)
	assert.Equal(t, "Green Valley", summaries[0].School)
	assert.Equal(t, 2, summaries[0].Lines)
	assert.True(t, summaries[0].TotalQty.Equal(qty(8)))
	assert.Equal(t, 4, items[0].DaysOverdue)
}
