package loadingrepo_test

import (
	"context"
	"testing"
	"time"

	"booksamples/internal/adapters/out/postgres/loadingrepo"
	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/loading"
	"booksamples/internal/core/domain/model/stock"
	"booksamples/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type LoadingRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *loadingrepo.GormLoadingRepository
	tracker    *MockAggregateTracker
}

func (suite *LoadingRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&loadingrepo.LoadingDTO{}, &loadingrepo.LoadingItemDTO{}))
}

func (suite *LoadingRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE loading_items, loadings").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = loadingrepo.NewGormLoadingRepository(suite.db, suite.tracker)
}

func (suite *LoadingRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *LoadingRepositoryIntegrationTestSuite) TestAdd_Success() {
	ctx := context.Background()
	l := suite.createTestLoading("MATH-5", "SCI-5")
	suite.tracker.On("TrackAggregate", l.ID(), l).Once()

	suite.Require().NoError(suite.repository.Add(ctx, l))

	suite.assertCount(&loadingrepo.LoadingDTO{}, 1)
	suite.assertCount(&loadingrepo.LoadingItemDTO{}, 2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *LoadingRepositoryIntegrationTestSuite) TestAdd_NotConstructed() {
	err := suite.repository.Add(context.Background(), &loading.Loading{})

	suite.Require().ErrorIs(err, loading.ErrLoadingIsNotConstructed)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *LoadingRepositoryIntegrationTestSuite) TestGet_KeepsLineOrder() {
	ctx := context.Background()
	l := suite.createTestLoading("SCI-5", "ENG-5", "MATH-5")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, l))

	got, err := suite.repository.Get(ctx, l.ID())

	suite.Require().NoError(err)
	suite.Require().Len(got.Items(), 3)
	suite.Equal("SCI-5", got.Items()[0].ItemCode())
	suite.Equal("ENG-5", got.Items()[1].ItemCode())
	suite.Equal("MATH-5", got.Items()[2].ItemCode())
	suite.True(got.TotalQty().Equal(decimal.NewFromInt(30)))
	suite.Equal(loading.Draft, got.Status())
}

func (suite *LoadingRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *LoadingRepositoryIntegrationTestSuite) TestUpdate_SubmitAndReplaceLines() {
	ctx := context.Background()
	l := suite.createTestLoading("MATH-5", "SCI-5")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, l))

	_, err := l.ValidateDraft("Van - KA01", stock.Balances{
		{ItemCode: "MATH-5", Warehouse: "Main Store"}: decimal.NewFromInt(100),
		{ItemCode: "SCI-5", Warehouse: "Main Store"}:  decimal.NewFromInt(100),
	})
	suite.Require().NoError(err)
	entryID := kernel.NewUUID()
	suite.Require().NoError(l.Submit(entryID))
	suite.Require().NoError(suite.repository.Update(ctx, l))

	got, err := suite.repository.Get(ctx, l.ID())
	suite.Require().NoError(err)
	suite.Equal(kernel.Submitted, got.DocStatus())
	suite.Equal(loading.Loaded, got.Status())
	suite.Equal("Van - KA01", got.TargetWarehouse())
	suite.Require().NotNil(got.StockEntryID())
	suite.True(got.StockEntryID().IsEqual(entryID))
	suite.True(got.Items()[0].AvailableQty().Equal(decimal.NewFromInt(100)))
	suite.assertCount(&loadingrepo.LoadingItemDTO{}, 2)
}

func (suite *LoadingRepositoryIntegrationTestSuite) TestUpdate_Missing() {
	l := suite.createTestLoading("MATH-5")

	err := suite.repository.Update(context.Background(), l)

	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *LoadingRepositoryIntegrationTestSuite) createTestLoading(codes ...string) *loading.Loading {
	items := make([]loading.Item, 0, len(codes))
	for _, code := range codes {
		item, err := loading.NewItem(code, code+" title", "Class 5", decimal.NewFromInt(10))
		suite.Require().NoError(err)
		items = append(items, item)
	}

	l, err := loading.NewLoading(kernel.NewUUID(), kernel.NewUUID(), "Ravi",
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), "Main Store", "", items)
	suite.Require().NoError(err)
	return l
}

func (suite *LoadingRepositoryIntegrationTestSuite) assertCount(model any, expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestLoadingRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LoadingRepositoryIntegrationTestSuite))
}
