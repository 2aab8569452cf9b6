package services_test

import (
	"testing"
	"time"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/stock"
	"booksamples/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func transfer(t *testing.T, n int64) *stock.Entry {
	t.Helper()
	entry, err := stock.NewEntry(kernel.NewUUID(), stock.MaterialTransfer, time.Now(),
		stock.Reference{VoucherType: stock.VoucherLoading, VoucherID: kernel.NewUUID()},
		[]stock.Line{{ItemCode: "MATH-5", Qty: qty(n), SourceWarehouse: "Main Store", TargetWarehouse: "Van - KA01"}})
	require.NoError(t, err)
	return entry
}

func TestStockPoster_Post(t *testing.T) {
	t.Run("moves stock between bins", func(t *testing.T) {
		entry := transfer(t, 30)
		balances := stock.Balances{{ItemCode: "MATH-5", Warehouse: "Main Store"}: qty(100)}

		bins, err := services.NewStockPoster(false).Post(entry, balances)

		require.NoError(t, err)
		assert.Equal(t, kernel.Submitted, entry.DocStatus())
		require.Len(t, bins, 2)
		assert.Equal(t, "Main Store", bins[0].Warehouse)
		assert.True(t, bins[0].ActualQty.Equal(qty(70)))
		assert.Equal(t, "Van - KA01", bins[1].Warehouse)
		assert.True(t, bins[1].ActualQty.Equal(qty(30)))
		assert.True(t, balances.Qty("MATH-5", "Van - KA01").Equal(qty(30)))
	})

	t.Run("rejects negative stock and leaves everything untouched", func(t *testing.T) {
		entry := transfer(t, 30)
		balances := stock.Balances{{ItemCode: "MATH-5", Warehouse: "Main Store"}: qty(10)}

		_, err := services.NewStockPoster(false).Post(entry, balances)

		require.ErrorIs(t, err, services.ErrInsufficientStock)
		assert.Contains(t, err.Error(), "MATH-5 in Main Store would be -20")
		assert.Equal(t, kernel.Draft, entry.DocStatus())
		assert.True(t, balances.Qty("MATH-5", "Main Store").Equal(qty(10)))
		assert.True(t, balances.Qty("MATH-5", "Van - KA01").IsZero())
	})

	t.Run("negative stock allowed", func(t *testing.T) {
		bins, err := services.NewStockPoster(true).Post(transfer(t, 30), stock.Balances{})

		require.NoError(t, err)
		assert.True(t, bins[0].ActualQty.Equal(qty(-30)))
	})

	t.Run("already submitted", func(t *testing.T) {
		entry := transfer(t, 1)
		poster := services.NewStockPoster(true)
		_, err := poster.Post(entry, stock.Balances{})
		require.NoError(t, err)

		_, err = poster.Post(entry, stock.Balances{})
		require.ErrorIs(t, err, kernel.ErrNotDraft)
	})
}

func TestStockPoster_Reverse(t *testing.T) {
	poster := services.NewStockPoster(false)
	entry := transfer(t, 30)
	balances := stock.Balances{{ItemCode: "MATH-5", Warehouse: "Main Store"}: qty(100)}
	_, err := poster.Post(entry, balances)
	require.NoError(t, err)

	bins, err := poster.Reverse(entry, balances)

	require.NoError(t, err)
	assert.Equal(t, kernel.Cancelled, entry.DocStatus())
	require.Len(t, bins, 2)
	assert.True(t, balances.Qty("MATH-5", "Main Store").Equal(qty(100)))
	assert.True(t, balances.Qty("MATH-5", "Van - KA01").IsZero())

	_, err = poster.Reverse(entry, balances)
	require.ErrorIs(t, err, kernel.ErrNotSubmitted)
}

func TestStockPoster_ReverseAfterBooksMovedOn(t *testing.T) {
	poster := services.NewStockPoster(false)
	entry := transfer(t, 30)
	balances := stock.Balances{{ItemCode: "MATH-5", Warehouse: "Main Store"}: qty(30)}
	_, err := poster.Post(entry, balances)
	require.NoError(t, err)
	balances[stock.BinKey{ItemCode: "MATH-5", Warehouse: "Van - KA01"}] = qty(5)

	_, err = poster.Reverse(entry, balances)

	require.ErrorIs(t, err, services.ErrInsufficientStock)
	assert.Equal(t, kernel.Submitted, entry.DocStatus())
}

func TestStockPoster_WrongStatusLeavesBalances(t *testing.T) {
	poster := services.NewStockPoster(true)
	entry := transfer(t, 30)
	balances := stock.Balances{{ItemCode: "MATH-5", Warehouse: "Main Store"}: qty(100)}
	_, err := poster.Post(entry, balances)
	require.NoError(t, err)

	_, err = poster.Post(entry, balances)
	require.ErrorIs(t, err, kernel.ErrNotDraft)

	_, err = poster.Reverse(entry, balances)
	require.NoError(t, err)

	_, err = poster.Reverse(entry, balances)
	require.ErrorIs(t, err, kernel.ErrNotSubmitted)
	assert.True(t, balances.Qty("MATH-5", "Main Store").Equal(qty(100)))
	assert.True(t, balances.Qty("MATH-5", "Van - KA01").IsZero())
}
