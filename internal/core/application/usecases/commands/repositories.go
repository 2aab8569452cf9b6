// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"booksamples/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest set of repositories it needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	LoadingRepoFactory interface {
		LoadingRepository() ports.LoadingRepository
	}

	DistributionRepoFactory interface {
		DistributionRepository() ports.DistributionRepository
	}

	CollectionRepoFactory interface {
		CollectionRepository() ports.CollectionRepository
	}

	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	SchoolRepoFactory interface {
		SchoolRepository() ports.SchoolRepository
	}

	// StockRepoFactory provides access to stock entries and bins. Every
	// submit and cancel posts through it inside the document's transaction.
	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	// LoadingUoW manages transactions for loading operations.
	LoadingUoW interface {
		TxManager
		LoadingRepoFactory
		VehicleRepoFactory
		CatalogRepoFactory
		StockRepoFactory
	}

	LoadingUoWFactory interface {
		Create() LoadingUoW
	}

	// DistributionUoW manages transactions for distribution operations. The
	// linked loading and vehicle are read to resolve the source warehouse.
	DistributionUoW interface {
		TxManager
		DistributionRepoFactory
		LoadingRepoFactory
		SchoolRepoFactory
		VehicleRepoFactory
		CatalogRepoFactory
		StockRepoFactory
	}

	DistributionUoWFactory interface {
		Create() DistributionUoW
	}

	// CollectionUoW manages transactions for collection operations. Submit
	// and cancel write the parent distribution in the same transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   c, err := uow.CollectionRepository().Get(ctx, id)
	//   d, err := uow.DistributionRepository().Get(ctx, *c.DistributionID())
	//   // ... post stock, update both
	//
	//   err = uow.Commit(ctx)
	CollectionUoW interface {
		TxManager
		CollectionRepoFactory
		DistributionRepoFactory
		VehicleRepoFactory
		StockRepoFactory
	}

	CollectionUoWFactory interface {
		Create() CollectionUoW
	}

	// VehicleUoW manages transactions for vehicle operations, including
	// warehouse provisioning.
	VehicleUoW interface {
		TxManager
		VehicleRepoFactory
		WarehouseRepoFactory
	}

	VehicleUoWFactory interface {
		Create() VehicleUoW
	}

	SchoolUoW interface {
		TxManager
		SchoolRepoFactory
	}

	SchoolUoWFactory interface {
		Create() SchoolUoW
	}

	// SetupUoW manages transactions for master data: items, class grades,
	// warehouses and opening stock.
	SetupUoW interface {
		TxManager
		CatalogRepoFactory
		WarehouseRepoFactory
		StockRepoFactory
	}

	SetupUoWFactory interface {
		Create() SetupUoW
	}
)
