package stock

import (
	"sort"

	"github.com/shopspring/decimal"
)

// BinKey addresses the on-hand quantity of one item in one warehouse.
type BinKey struct {
	ItemCode  string
	Warehouse string
}

// Bin is the persisted on-hand quantity of an item in a warehouse.
type Bin struct {
	ItemCode  string
	Warehouse string
	ActualQty decimal.Decimal
}

// Balances is a snapshot of on-hand quantities. A missing key means zero.
type Balances map[BinKey]decimal.Decimal

// Qty returns the on-hand quantity of itemCode in warehouse.
func (b Balances) Qty(itemCode, warehouse string) decimal.Decimal {
	if b == nil {
		return decimal.Zero
	}
	if qty, ok := b[BinKey{ItemCode: itemCode, Warehouse: warehouse}]; ok {
		return qty
	}
	return decimal.Zero
}

// Apply adds the movements to the snapshot in place.
func (b Balances) Apply(movements []Movement) {
	for _, m := range movements {
		key := BinKey{ItemCode: m.ItemCode, Warehouse: m.Warehouse}
		b[key] = b.Qty(m.ItemCode, m.Warehouse).Add(m.Qty)
	}
}

// KeysOf lists the distinct bins touched by the movements in a stable order.
func KeysOf(movements []Movement) []BinKey {
	seen := make(map[BinKey]struct{}, len(movements))
	keys := make([]BinKey, 0, len(movements))
	for _, m := range movements {
		key := BinKey{ItemCode: m.ItemCode, Warehouse: m.Warehouse}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Warehouse != keys[j].Warehouse {
			return keys[i].Warehouse < keys[j].Warehouse
		}
		return keys[i].ItemCode < keys[j].ItemCode
	})
	return keys
}
