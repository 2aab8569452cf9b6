// Package stock models the inventory ledger the sample documents post into:
// companies, warehouses, bins (on-hand quantity per item and warehouse) and
// stock entries (receipt, transfer, issue).
//
// A submitted Entry yields Movements; cancelling it yields the exact reversal.
// Balances is an in-memory snapshot of bins used for availability checks.
package stock
