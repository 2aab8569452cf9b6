// Package postgres provides the GORM-based Unit of Work over the book sample
// repositories.
//
// A unit of work wraps one database transaction. Every repository obtained
// from it after Begin shares that transaction, so a submit that writes the
// document, its stock entries and the affected bins either lands completely
// or not at all.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.DistributionRepository().Update(ctx, d); err != nil {
//	    return err
//	}
//	if err := uow.StockRepository().SaveBins(ctx, bins); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit returns gorm.ErrInvalidTransaction,
// which the deferred call discards.
//
// Concurrency:
//   - Each UnitOfWork instance owns its transaction; goroutines must not share one
//   - Bins read through StockRepository.GetBalances stay locked until Commit or Rollback
//   - Distributions carry a version column; a stale update fails with errs.ErrVersionIsInvalid
package postgres

import (
	"context"

	"booksamples/internal/adapters/out/postgres/catalogrepo"
	"booksamples/internal/adapters/out/postgres/collectionrepo"
	"booksamples/internal/adapters/out/postgres/distributionrepo"
	"booksamples/internal/adapters/out/postgres/loadingrepo"
	"booksamples/internal/adapters/out/postgres/schoolrepo"
	"booksamples/internal/adapters/out/postgres/stockrepo"
	"booksamples/internal/adapters/out/postgres/vehiclerepo"
	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Each business operation gets a fresh unit of work instance.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and tracks the
// aggregates written during it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling Begin again while one is active is a
// no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the current transaction. It returns
// gorm.ErrInvalidTransaction when none is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the current transaction and forgets the aggregates
// written in it. It returns gorm.ErrInvalidTransaction when none is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// conn returns the active transaction, or the plain connection outside one.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) LoadingRepository() ports.LoadingRepository {
	return loadingrepo.NewGormLoadingRepository(uow.conn(), uow)
}

// DistributionRepository returns a repository whose Update fails with
// errs.ErrVersionIsInvalid when another transaction committed first.
func (uow *GormUnitOfWork) DistributionRepository() ports.DistributionRepository {
	return distributionrepo.NewGormDistributionRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) CollectionRepository() ports.CollectionRepository {
	return collectionrepo.NewGormCollectionRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) VehicleRepository() ports.VehicleRepository {
	return vehiclerepo.NewGormVehicleRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) SchoolRepository() ports.SchoolRepository {
	return schoolrepo.NewGormSchoolRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) StockRepository() ports.StockRepository {
	return stockrepo.NewGormStockRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) WarehouseRepository() ports.WarehouseRepository {
	return stockrepo.NewGormWarehouseRepository(uow.conn())
}

func (uow *GormUnitOfWork) CatalogRepository() ports.CatalogRepository {
	return catalogrepo.NewGormCatalogRepository(uow.conn())
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after a successful Add or Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregateIDs returns the ids of the aggregates written so far, in
// write order. An aggregate written twice appears twice.
func (uow *GormUnitOfWork) TrackedAggregateIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(uow.trackedAggregates))
	for _, tracked := range uow.trackedAggregates {
		ids = append(ids, tracked.ID)
	}
	return ids
}
