package cmd

import (
	"context"
	"time"

	httpin "booksamples/internal/adapters/in/http"
	"booksamples/internal/adapters/out/postgres"
	"booksamples/internal/core/application/usecases/commands"
	"booksamples/internal/core/application/usecases/queries"
	"booksamples/internal/core/domain/model/stock"
	"booksamples/internal/core/domain/services"
	"booksamples/internal/jobs"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	poster     services.StockPoster
	log        *logrus.Entry
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, log *logrus.Entry) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		poster:     services.NewStockPoster(cfg.AllowNegativeStock),
		log:        log,
	}
}

// Install seeds class grades, the default company and the field warehouse.
func (c *CompositionRoot) Install(ctx context.Context) (commands.InstallResult, error) {
	cmd, err := commands.NewInstallCommand(c.cfg.FieldWarehouse, c.cfg.CompanyName, c.cfg.CompanyAbbr)
	if err != nil {
		return commands.InstallResult{}, err
	}
	return commands.NewInstallCommandHandler(c.setupUoWFactory()).Handle(ctx, cmd)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(c.CreateCommandHandlers(), c.CreateQueryHandlers(), c.log)
}

func (c *CompositionRoot) CreateCommandHandlers() httpin.CommandHandlers {
	field := c.fieldWarehouse()
	loadings := c.loadingUoWFactory()
	distributions := c.distributionUoWFactory()
	collections := c.collectionUoWFactory()
	vehicles := c.vehicleUoWFactory()
	schools := c.schoolUoWFactory()
	setup := c.setupUoWFactory()

	return httpin.CommandHandlers{
		CreateVehicle:              commands.NewCreateVehicleCommandHandler(vehicles),
		ProvisionVehicleWarehouse:  commands.NewProvisionVehicleWarehouseCommandHandler(vehicles),
		CreateSchool:               commands.NewCreateSchoolCommandHandler(schools),
		CreateSchoolCustomer:       commands.NewCreateSchoolCustomerCommandHandler(schools, c.cfg.CustomerGroup, c.cfg.Territory),
		CreateItem:                 commands.NewCreateItemCommandHandler(setup),
		PostOpeningStock:           commands.NewPostOpeningStockCommandHandler(setup, c.poster),
		CreateLoading:              commands.NewCreateLoadingCommandHandler(loadings),
		SubmitLoading:              commands.NewSubmitLoadingCommandHandler(loadings, c.poster),
		CancelLoading:              commands.NewCancelLoadingCommandHandler(loadings, c.poster),
		UpdateLoadingStatus:        commands.NewUpdateLoadingStatusCommandHandler(loadings),
		CreateDistribution:         commands.NewCreateDistributionCommandHandler(distributions, field),
		SubmitDistribution:         commands.NewSubmitDistributionCommandHandler(distributions, c.poster, field),
		CancelDistribution:         commands.NewCancelDistributionCommandHandler(distributions, c.poster),
		MakeCollection:             commands.NewMakeCollectionCommandHandler(collections, field),
		CreateCollection:           commands.NewCreateCollectionCommandHandler(collections, field),
		UpdateCollectionQuantities: commands.NewUpdateCollectionQuantitiesCommandHandler(collections, field),
		SubmitCollection:           commands.NewSubmitCollectionCommandHandler(collections, c.poster, field),
		CancelCollection:           commands.NewCancelCollectionCommandHandler(collections, c.poster),
	}
}

func (c *CompositionRoot) CreateQueryHandlers() httpin.QueryHandlers {
	return httpin.QueryHandlers{
		GetVehicle:                    queries.NewGetVehicleQueryHandler(c.gormDB),
		GetVehicleStock:               queries.NewGetVehicleStockQueryHandler(c.gormDB),
		GetVehicleItems:               queries.NewGetVehicleItemsQueryHandler(c.gormDB),
		GetSchoolPendingSamples:       queries.NewGetSchoolPendingSamplesQueryHandler(c.gormDB),
		GetSchoolPendingDistributions: queries.NewGetSchoolPendingDistributionsQueryHandler(c.gormDB),
		GetItemClassGrades:            queries.NewGetItemClassGradesQueryHandler(c.gormDB),
		GetStockBalance:               queries.NewGetStockBalanceQueryHandler(c.gormDB),
		GetLoading:                    queries.NewGetLoadingQueryHandler(c.gormDB),
		GetDistribution:               queries.NewGetDistributionQueryHandler(c.gormDB),
		GetDistributionPendingItems:   queries.NewGetDistributionPendingItemsQueryHandler(c.gormDB),
		GetCollection:                 queries.NewGetCollectionQueryHandler(c.gormDB),
		GetBookLedger:                 queries.NewGetBookLedgerQueryHandler(c.gormDB),
		GetSchoolLedger:               queries.NewGetSchoolLedgerQueryHandler(c.gormDB),
		GetVehicleLedger:              queries.NewGetVehicleLedgerQueryHandler(c.gormDB),
		GetPendingCollection:          c.CreateGetPendingCollectionQueryHandler(),
	}
}

func (c *CompositionRoot) CreateGetPendingCollectionQueryHandler() queries.GetPendingCollectionQueryHandler {
	return queries.NewGetPendingCollectionQueryHandler(c.gormDB, time.Now)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	sweep := jobs.NewOverdueSweepJob(c.CreateGetPendingCollectionQueryHandler(), c.cfg.OverdueSweepSchedule, c.log)
	return jobs.NewJobManager(sweep)
}

func (c *CompositionRoot) fieldWarehouse() string {
	if c.cfg.FieldWarehouse == "" {
		return stock.DefaultFieldWarehouseName
	}
	return c.cfg.FieldWarehouse
}

func (c *CompositionRoot) loadingUoWFactory() commands.LoadingUoWFactory {
	return FuncLoadingUoWFactory(func() commands.LoadingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) distributionUoWFactory() commands.DistributionUoWFactory {
	return FuncDistributionUoWFactory(func() commands.DistributionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) collectionUoWFactory() commands.CollectionUoWFactory {
	return FuncCollectionUoWFactory(func() commands.CollectionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) vehicleUoWFactory() commands.VehicleUoWFactory {
	return FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) schoolUoWFactory() commands.SchoolUoWFactory {
	return FuncSchoolUoWFactory(func() commands.SchoolUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) setupUoWFactory() commands.SetupUoWFactory {
	return FuncSetupUoWFactory(func() commands.SetupUoW {
		return c.uowFactory.Create()
	})
}

type FuncLoadingUoWFactory func() commands.LoadingUoW

func (f FuncLoadingUoWFactory) Create() commands.LoadingUoW {
	return f()
}

type FuncDistributionUoWFactory func() commands.DistributionUoW

func (f FuncDistributionUoWFactory) Create() commands.DistributionUoW {
	return f()
}

type FuncCollectionUoWFactory func() commands.CollectionUoW

func (f FuncCollectionUoWFactory) Create() commands.CollectionUoW {
	return f()
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncSchoolUoWFactory func() commands.SchoolUoW

func (f FuncSchoolUoWFactory) Create() commands.SchoolUoW {
	return f()
}

type FuncSetupUoWFactory func() commands.SetupUoW

func (f FuncSetupUoWFactory) Create() commands.SetupUoW {
	return f()
}
