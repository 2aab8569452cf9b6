package postgres_test

import (
	"context"
	"strings"
	"testing"
	"time"

	postgres_adapter "booksamples/internal/adapters/out/postgres"
	"booksamples/internal/core/domain/model/catalog"
	"booksamples/internal/core/domain/model/distribution"
	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/school"
	"booksamples/internal/core/domain/model/stock"
	"booksamples/internal/core/domain/model/vehicle"
	"booksamples/internal/core/ports"
	"booksamples/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the unit of work and its repositories
// against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest truncates every table.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE " + strings.Join(postgres_adapter.Tables, ", ")).Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

// TestUnitOfWork_RollbackAcrossRepositories verifies a rollback discards the
// document and the bins written in the same transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()
	v := newTestVehicle(suite)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.VehicleRepository().Add(ctx, v))
	suite.Require().NoError(uow.StockRepository().SaveBins(ctx, []stock.Bin{
		{ItemCode: "MATH-5", Warehouse: "Stores", ActualQty: decimal.NewFromInt(10)},
	}))
	suite.Require().NoError(uow.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err := fresh.VehicleRepository().Get(ctx, v.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	balances, err := fresh.StockRepository().GetBalances(ctx, []stock.BinKey{{ItemCode: "MATH-5", Warehouse: "Stores"}})
	suite.Require().NoError(err)
	suite.Empty(balances)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestStockRepository_BinsUpsert() {
	ctx := context.Background()
	uow := suite.factory.Create()
	keys := []stock.BinKey{{ItemCode: "MATH-5", Warehouse: "Stores"}, {ItemCode: "MATH-5", Warehouse: "Van - KA01"}}

	suite.Require().NoError(uow.StockRepository().SaveBins(ctx, []stock.Bin{
		{ItemCode: "MATH-5", Warehouse: "Stores", ActualQty: decimal.NewFromInt(100)},
	}))
	suite.Require().NoError(uow.StockRepository().SaveBins(ctx, []stock.Bin{
		{ItemCode: "MATH-5", Warehouse: "Stores", ActualQty: decimal.NewFromInt(60)},
		{ItemCode: "MATH-5", Warehouse: "Van - KA01", ActualQty: decimal.NewFromInt(40)},
	}))

	suite.Require().NoError(uow.Begin(ctx))
	balances, err := uow.StockRepository().GetBalances(ctx, keys)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))

	suite.True(balances.Qty("MATH-5", "Stores").Equal(decimal.NewFromInt(60)))
	suite.True(balances.Qty("MATH-5", "Van - KA01").Equal(decimal.NewFromInt(40)))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestStockRepository_EntryRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	entry, err := stock.NewEntry(kernel.NewUUID(), stock.MaterialTransfer, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		stock.Reference{VoucherType: stock.VoucherLoading, VoucherID: kernel.NewUUID()},
		[]stock.Line{{ItemCode: "MATH-5", Qty: decimal.NewFromInt(5), SourceWarehouse: "Stores", TargetWarehouse: "Van - KA01"}})
	suite.Require().NoError(err)
	suite.Require().NoError(uow.StockRepository().AddEntry(ctx, entry))

	suite.Require().NoError(entry.Submit())
	suite.Require().NoError(uow.StockRepository().UpdateEntry(ctx, entry))

	got, err := uow.StockRepository().GetEntry(ctx, entry.ID())
	suite.Require().NoError(err)
	suite.Equal(kernel.Submitted, got.DocStatus())
	suite.Require().Len(got.Lines(), 1)
	suite.True(got.Lines()[0].Qty.Equal(decimal.NewFromInt(5)))
	suite.Equal("Van - KA01", got.Lines()[0].TargetWarehouse)
	suite.Equal(stock.VoucherLoading, got.Reference().VoucherType)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TracksWrittenAggregates() {
	ctx := context.Background()
	uow, ok := suite.factory.Create().(*postgres_adapter.GormUnitOfWork)
	suite.Require().True(ok)

	v := newTestVehicle(suite)
	entry, err := stock.NewEntry(kernel.NewUUID(), stock.MaterialReceipt, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		stock.Reference{VoucherType: stock.VoucherOpeningStock, VoucherID: kernel.NewUUID()},
		[]stock.Line{{ItemCode: "MATH-5", Qty: decimal.NewFromInt(5), TargetWarehouse: "Stores"}})
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.VehicleRepository().Add(ctx, v))
	suite.Require().NoError(uow.StockRepository().AddEntry(ctx, entry))

	suite.Equal([]kernel.UUID{v.ID(), entry.ID()}, uow.TrackedAggregateIDs())

	suite.Require().NoError(uow.Rollback(ctx))
	suite.Empty(uow.TrackedAggregateIDs())
}

// TestDistributionRepository_StaleUpdateIsRejected verifies that of two
// transactions updating the same distribution, the later one fails.
func (suite *UnitOfWorkIntegrationTestSuite) TestDistributionRepository_StaleUpdateIsRejected() {
	ctx := context.Background()
	d := newSubmittedDistribution(suite)
	suite.Require().NoError(suite.factory.Create().DistributionRepository().Add(ctx, d))

	first, err := suite.factory.Create().DistributionRepository().Get(ctx, d.ID())
	suite.Require().NoError(err)
	second, err := suite.factory.Create().DistributionRepository().Get(ctx, d.ID())
	suite.Require().NoError(err)

	delta := []distribution.CollectionDelta{{ItemCode: "MATH-5", Qty: decimal.NewFromInt(3)}}
	suite.Require().NoError(first.UpdateCollection(delta))
	suite.Require().NoError(second.UpdateCollection(delta))

	suite.Require().NoError(suite.factory.Create().DistributionRepository().Update(ctx, first))
	err = suite.factory.Create().DistributionRepository().Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	stored, err := suite.factory.Create().DistributionRepository().Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.True(stored.TotalCollected().Equal(decimal.NewFromInt(3)))
	suite.Equal(distribution.PartiallyCollected, stored.Status())
	suite.Equal(2, stored.Version())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDistributionRepository_UpdateMissing() {
	d := newSubmittedDistribution(suite)

	err := suite.factory.Create().DistributionRepository().Update(context.Background(), d)

	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSchoolRepository_LinkCustomer() {
	ctx := context.Background()
	uow := suite.factory.Create()

	s, err := school.NewSchool(kernel.NewUUID(), "Green Valley School", "CBSE",
		school.Contact{Phone: "080-1234"}, school.Address{City: "Bengaluru", AreaZone: "North"})
	suite.Require().NoError(err)
	suite.Require().NoError(uow.SchoolRepository().Add(ctx, s))

	customer, err := school.NewCustomerForSchool(kernel.NewUUID(), s, "", "")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.SchoolRepository().AddCustomer(ctx, customer))
	suite.Require().NoError(s.LinkCustomer(customer.ID()))
	suite.Require().NoError(uow.SchoolRepository().Update(ctx, s))
	suite.Require().NoError(uow.Commit(ctx))

	got, err := suite.factory.Create().SchoolRepository().Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(got.CustomerID())
	suite.True(got.CustomerID().IsEqual(customer.ID()))
	suite.Equal("North", got.Address().AreaZone)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCatalogRepository_ClassGradesArray() {
	ctx := context.Background()
	uow := suite.factory.Create()

	item, err := catalog.NewItem("MATH-5", "Maths Class 5", "", catalog.Details{
		Subject:      "Mathematics",
		ClassGrades:  []string{"Class 5", "Class 6"},
		IsSampleBook: true,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(uow.CatalogRepository().AddItem(ctx, item))

	for _, g := range catalog.DefaultClassGrades() {
		suite.Require().NoError(uow.CatalogRepository().AddClassGrade(ctx, g))
	}
	suite.Require().NoError(uow.CatalogRepository().AddClassGrade(ctx, catalog.DefaultClassGrades()[0]))

	got, err := uow.CatalogRepository().GetItem(ctx, "MATH-5")
	suite.Require().NoError(err)
	suite.Equal([]string{"Class 5", "Class 6"}, got.Details().ClassGrades)
	suite.Equal("Nos", got.StockUOM())

	grades, err := uow.CatalogRepository().ListClassGrades(ctx)
	suite.Require().NoError(err)
	suite.Len(grades, 15)
	suite.Equal("Nursery", grades[0].Name())
	suite.Equal("Class 12", grades[14].Name())

	_, err = uow.CatalogRepository().GetItem(ctx, "NOPE")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWarehouseRepository() {
	ctx := context.Background()
	uow := suite.factory.Create()

	company, err := stock.NewCompany("Acme Publishers", "AP", true)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.WarehouseRepository().AddCompany(ctx, company))

	w, err := stock.NewWarehouse("Van - KA01", company.Name(), company.RootGroup(), false)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.WarehouseRepository().AddWarehouse(ctx, w))

	got, err := uow.WarehouseRepository().GetWarehouse(ctx, "Van - KA01")
	suite.Require().NoError(err)
	suite.Equal(w, *got)

	companies, err := uow.WarehouseRepository().ListCompanies(ctx)
	suite.Require().NoError(err)
	suite.Equal([]stock.Company{company}, companies)

	_, err = uow.WarehouseRepository().GetWarehouse(ctx, "Van - XX")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func newTestVehicle(suite *UnitOfWorkIntegrationTestSuite) *vehicle.Vehicle {
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "KA01", "Van", "Ravi", "98450")
	suite.Require().NoError(err)
	return v
}

func newSubmittedDistribution(suite *UnitOfWorkIntegrationTestSuite) *distribution.Distribution {
	item, err := distribution.NewItem("MATH-5", "Maths Class 5", "Class 5", "Mathematics", decimal.NewFromInt(10), nil)
	suite.Require().NoError(err)

	d, err := distribution.NewDistribution(kernel.NewUUID(), distribution.Header{
		SchoolID:         kernel.NewUUID(),
		DistributionDate: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		SourceWarehouse:  "Van - KA01",
	}, []distribution.Item{item})
	suite.Require().NoError(err)

	_, err = d.ValidateDraft(distribution.ValidationContext{FieldWarehouse: stock.DefaultFieldWarehouseName})
	suite.Require().NoError(err)
	suite.Require().NoError(d.Submit(kernel.NewUUID()))
	return d
}

func TestUnitOfWorkIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
