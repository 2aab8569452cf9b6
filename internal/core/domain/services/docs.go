// Package services holds domain services that span more than one aggregate
// of the sample tracking domain.
//
// The package includes:
//   - StockPoster: applies stock entries to bin balances, guarding against
//     negative stock
//   - WarehouseProvisioner: gives a vehicle its "Van - <number>" warehouse
//
// Both are pure: callers load the state they need and persist the result.
package services
