package services

import (
	"errors"
	"fmt"

	"booksamples/internal/core/domain/model/stock"
)

// ErrInsufficientStock is returned when posting an entry would leave a bin
// below zero and negative stock is not allowed.
var ErrInsufficientStock = errors.New("insufficient stock")

// StockPoster applies stock entries to bin balances.
//
// It does no I/O: the caller loads the current balances of every bin the
// entry touches, calls Post or Reverse, and persists the returned bins.
//
// Example usage:
//
//	poster := services.NewStockPoster(false)
//	entry, _ := stock.NewEntry(id, stock.MaterialTransfer, date, ref, lines)
//	bins, err := poster.Post(entry, balances)
//	if errors.Is(err, services.ErrInsufficientStock) {
//	    // the source warehouse does not hold enough books
//	}
type StockPoster struct {
	allowNegative bool
}

// NewStockPoster creates a poster. With allowNegative bins may go below zero.
func NewStockPoster(allowNegative bool) StockPoster {
	return StockPoster{allowNegative: allowNegative}
}

// Post submits a draft entry and returns the bins it changes with their new
// quantities. balances is updated in place, and only on success.
func (p StockPoster) Post(entry *stock.Entry, balances stock.Balances) ([]stock.Bin, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if err := entry.DocStatus().RequireDraft(); err != nil {
		return nil, err
	}

	movements := entry.Movements()
	bins, err := p.apply(movements, balances)
	if err != nil {
		return nil, err
	}
	if err = entry.Submit(); err != nil {
		return nil, err
	}
	return bins, nil
}

// Reverse cancels a submitted entry and returns the bins restored by undoing
// its movements. Reversing a receipt whose books have moved on can drive a
// bin negative; that is rejected like any other shortfall.
func (p StockPoster) Reverse(entry *stock.Entry, balances stock.Balances) ([]stock.Bin, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if err := entry.DocStatus().RequireSubmitted(); err != nil {
		return nil, err
	}

	movements := entry.ReversalMovements()
	bins, err := p.apply(movements, balances)
	if err != nil {
		return nil, err
	}
	if err = entry.Cancel(); err != nil {
		return nil, err
	}
	return bins, nil
}

func (p StockPoster) apply(movements []stock.Movement, balances stock.Balances) ([]stock.Bin, error) {
	next := make(stock.Balances, len(balances))
	for k, v := range balances {
		next[k] = v
	}
	next.Apply(movements)

	keys := stock.KeysOf(movements)
	bins := make([]stock.Bin, 0, len(keys))
	var shortfalls []error
	for _, key := range keys {
		qty := next.Qty(key.ItemCode, key.Warehouse)
		if qty.IsNegative() && !p.allowNegative {
			shortfalls = append(shortfalls, fmt.Errorf("%w: %s in %s would be %s",
				ErrInsufficientStock, key.ItemCode, key.Warehouse, qty))
			continue
		}
		bins = append(bins, stock.Bin{ItemCode: key.ItemCode, Warehouse: key.Warehouse, ActualQty: qty})
	}
	if err := errors.Join(shortfalls...); err != nil {
		return nil, err
	}

	for _, key := range keys {
		balances[key] = next[key]
	}
	return bins, nil
}
