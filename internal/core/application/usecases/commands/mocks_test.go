package commands_test

import (
	"context"

	"booksamples/internal/core/domain/model/catalog"
	"booksamples/internal/core/domain/model/collection"
	"booksamples/internal/core/domain/model/distribution"
	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/loading"
	"booksamples/internal/core/domain/model/school"
	"booksamples/internal/core/domain/model/stock"
	"booksamples/internal/core/domain/model/vehicle"
	"booksamples/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations for testing.
type MockLoadingRepository struct {
	mock.Mock
}

func (m *MockLoadingRepository) Add(ctx context.Context, aggregate *loading.Loading) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockLoadingRepository) Update(ctx context.Context, aggregate *loading.Loading) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockLoadingRepository) Get(ctx context.Context, id kernel.UUID) (*loading.Loading, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*loading.Loading), args.Error(1)
}

type MockDistributionRepository struct {
	mock.Mock
}

func (m *MockDistributionRepository) Add(ctx context.Context, aggregate *distribution.Distribution) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockDistributionRepository) Update(ctx context.Context, aggregate *distribution.Distribution) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockDistributionRepository) Get(ctx context.Context, id kernel.UUID) (*distribution.Distribution, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*distribution.Distribution), args.Error(1)
}

type MockCollectionRepository struct {
	mock.Mock
}

func (m *MockCollectionRepository) Add(ctx context.Context, aggregate *collection.Collection) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockCollectionRepository) Update(ctx context.Context, aggregate *collection.Collection) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockCollectionRepository) Get(ctx context.Context, id kernel.UUID) (*collection.Collection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*collection.Collection), args.Error(1)
}

type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

type MockSchoolRepository struct {
	mock.Mock
}

func (m *MockSchoolRepository) Add(ctx context.Context, aggregate *school.School) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockSchoolRepository) Update(ctx context.Context, aggregate *school.School) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockSchoolRepository) Get(ctx context.Context, id kernel.UUID) (*school.School, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*school.School), args.Error(1)
}

func (m *MockSchoolRepository) AddCustomer(ctx context.Context, customer *school.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) AddEntry(ctx context.Context, entry *stock.Entry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockStockRepository) UpdateEntry(ctx context.Context, entry *stock.Entry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockStockRepository) GetEntry(ctx context.Context, id kernel.UUID) (*stock.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.Entry), args.Error(1)
}

func (m *MockStockRepository) GetBalances(ctx context.Context, keys []stock.BinKey) (stock.Balances, error) {
	args := m.Called(ctx, keys)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(stock.Balances), args.Error(1)
}

func (m *MockStockRepository) SaveBins(ctx context.Context, bins []stock.Bin) error {
	return m.Called(ctx, bins).Error(0)
}

type MockWarehouseRepository struct {
	mock.Mock
}

func (m *MockWarehouseRepository) GetWarehouse(ctx context.Context, name string) (*stock.Warehouse, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) AddWarehouse(ctx context.Context, warehouse stock.Warehouse) error {
	return m.Called(ctx, warehouse).Error(0)
}

func (m *MockWarehouseRepository) ListCompanies(ctx context.Context) ([]stock.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]stock.Company), args.Error(1)
}

func (m *MockWarehouseRepository) AddCompany(ctx context.Context, company stock.Company) error {
	return m.Called(ctx, company).Error(0)
}

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) AddItem(ctx context.Context, item *catalog.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockCatalogRepository) GetItem(ctx context.Context, code string) (*catalog.Item, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func (m *MockCatalogRepository) ListClassGrades(ctx context.Context) ([]catalog.ClassGrade, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.ClassGrade), args.Error(1)
}

func (m *MockCatalogRepository) AddClassGrade(ctx context.Context, grade catalog.ClassGrade) error {
	return m.Called(ctx, grade).Error(0)
}

// MockUoW satisfies every unit of work interface of the package.
type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) LoadingRepository() ports.LoadingRepository {
	return m.Called().Get(0).(ports.LoadingRepository)
}

func (m *MockUoW) DistributionRepository() ports.DistributionRepository {
	return m.Called().Get(0).(ports.DistributionRepository)
}

func (m *MockUoW) CollectionRepository() ports.CollectionRepository {
	return m.Called().Get(0).(ports.CollectionRepository)
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	return m.Called().Get(0).(ports.VehicleRepository)
}

func (m *MockUoW) SchoolRepository() ports.SchoolRepository {
	return m.Called().Get(0).(ports.SchoolRepository)
}

func (m *MockUoW) StockRepository() ports.StockRepository {
	return m.Called().Get(0).(ports.StockRepository)
}

func (m *MockUoW) WarehouseRepository() ports.WarehouseRepository {
	return m.Called().Get(0).(ports.WarehouseRepository)
}

func (m *MockUoW) CatalogRepository() ports.CatalogRepository {
	return m.Called().Get(0).(ports.CatalogRepository)
}

// MockUoWFactory hands out the same unit of work typed as T.
type MockUoWFactory[T any] struct {
	mock.Mock
}

func (m *MockUoWFactory[T]) Create() T {
	return m.Called().Get(0).(T)
}

// repos bundles one mock of every repository behind a MockUoW. Repository
// getters may be called any number of times.
type repos struct {
	uow           *MockUoW
	loadings      *MockLoadingRepository
	distributions *MockDistributionRepository
	collections   *MockCollectionRepository
	vehicles      *MockVehicleRepository
	schools       *MockSchoolRepository
	stock         *MockStockRepository
	warehouses    *MockWarehouseRepository
	catalog       *MockCatalogRepository
}

func newRepos() repos {
	r := repos{
		uow:           new(MockUoW),
		loadings:      new(MockLoadingRepository),
		distributions: new(MockDistributionRepository),
		collections:   new(MockCollectionRepository),
		vehicles:      new(MockVehicleRepository),
		schools:       new(MockSchoolRepository),
		stock:         new(MockStockRepository),
		warehouses:    new(MockWarehouseRepository),
		catalog:       new(MockCatalogRepository),
	}
	r.uow.On("LoadingRepository").Return(r.loadings).Maybe()
	r.uow.On("DistributionRepository").Return(r.distributions).Maybe()
	r.uow.On("CollectionRepository").Return(r.collections).Maybe()
	r.uow.On("VehicleRepository").Return(r.vehicles).Maybe()
	r.uow.On("SchoolRepository").Return(r.schools).Maybe()
	r.uow.On("StockRepository").Return(r.stock).Maybe()
	r.uow.On("WarehouseRepository").Return(r.warehouses).Maybe()
	r.uow.On("CatalogRepository").Return(r.catalog).Maybe()
	return r
}

func factoryFor[T any](uow T) *MockUoWFactory[T] {
	f := new(MockUoWFactory[T])
	f.On("Create").Return(uow).Once()
	return f
}

func (r repos) assertExpectations(t mock.TestingT) {
	r.uow.AssertExpectations(t)
	r.loadings.AssertExpectations(t)
	r.distributions.AssertExpectations(t)
	r.collections.AssertExpectations(t)
	r.vehicles.AssertExpectations(t)
	r.schools.AssertExpectations(t)
	r.stock.AssertExpectations(t)
	r.warehouses.AssertExpectations(t)
	r.catalog.AssertExpectations(t)
}
