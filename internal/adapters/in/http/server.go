package http

import (
	"net/http"

	"booksamples/internal/core/application/usecases/commands"
	"booksamples/internal/core/application/usecases/queries"
	"booksamples/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// CommandHandlers groups the write use cases exposed over HTTP.
type CommandHandlers struct {
	CreateVehicle              commands.CreateVehicleCommandHandler
	ProvisionVehicleWarehouse  commands.ProvisionVehicleWarehouseCommandHandler
	CreateSchool               commands.CreateSchoolCommandHandler
	CreateSchoolCustomer       commands.CreateSchoolCustomerCommandHandler
	CreateItem                 commands.CreateItemCommandHandler
	PostOpeningStock           commands.PostOpeningStockCommandHandler
	CreateLoading              commands.CreateLoadingCommandHandler
	SubmitLoading              commands.SubmitLoadingCommandHandler
	CancelLoading              commands.CancelLoadingCommandHandler
	UpdateLoadingStatus        commands.UpdateLoadingStatusCommandHandler
	CreateDistribution         commands.CreateDistributionCommandHandler
	SubmitDistribution         commands.SubmitDistributionCommandHandler
	CancelDistribution         commands.CancelDistributionCommandHandler
	MakeCollection             commands.MakeCollectionCommandHandler
	CreateCollection           commands.CreateCollectionCommandHandler
	UpdateCollectionQuantities commands.UpdateCollectionQuantitiesCommandHandler
	SubmitCollection           commands.SubmitCollectionCommandHandler
	CancelCollection           commands.CancelCollectionCommandHandler
}

// QueryHandlers groups the read use cases exposed over HTTP.
type QueryHandlers struct {
	GetVehicle                    queries.GetVehicleQueryHandler
	GetVehicleStock               queries.GetVehicleStockQueryHandler
	GetVehicleItems               queries.GetVehicleItemsQueryHandler
	GetSchoolPendingSamples       queries.GetSchoolPendingSamplesQueryHandler
	GetSchoolPendingDistributions queries.GetSchoolPendingDistributionsQueryHandler
	GetItemClassGrades            queries.GetItemClassGradesQueryHandler
	GetStockBalance               queries.GetStockBalanceQueryHandler
	GetLoading                    queries.GetLoadingQueryHandler
	GetDistribution               queries.GetDistributionQueryHandler
	GetDistributionPendingItems   queries.GetDistributionPendingItemsQueryHandler
	GetCollection                 queries.GetCollectionQueryHandler
	GetBookLedger                 queries.GetBookLedgerQueryHandler
	GetSchoolLedger               queries.GetSchoolLedgerQueryHandler
	GetVehicleLedger              queries.GetVehicleLedgerQueryHandler
	GetPendingCollection          queries.GetPendingCollectionQueryHandler
}

// Server handles HTTP requests by translating them into commands and queries.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	log      *logrus.Entry
}

func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers, log *logrus.Entry) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
		log:      log.WithField("component", "http"),
	}
}

// Register mounts every route on e and installs the validator, error
// handler and request logger.
func (s *Server) Register(e *echo.Echo) {
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = s.handleHTTPError
	e.Use(RequestLogger(s.log))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")

	api.POST("/vehicles", s.CreateVehicle)
	api.GET("/vehicles/:id", s.GetVehicle)
	api.POST("/vehicles/:id/warehouse", s.ProvisionVehicleWarehouse)
	api.GET("/vehicles/:id/stock", s.GetVehicleStock)
	api.GET("/vehicles/:id/items", s.GetVehicleItems)

	api.POST("/schools", s.CreateSchool)
	api.POST("/schools/:id/customer", s.CreateSchoolCustomer)
	api.GET("/schools/:id/pending-samples", s.GetSchoolPendingSamples)
	api.GET("/schools/:id/pending-distributions", s.GetSchoolPendingDistributions)

	api.POST("/items", s.CreateItem)
	api.GET("/items/:code/class-grades", s.GetItemClassGrades)
	api.GET("/stock/balance", s.GetStockBalance)
	api.POST("/stock/receipts", s.PostOpeningStock)

	api.POST("/loadings", s.CreateLoading)
	api.GET("/loadings/:id", s.GetLoading)
	api.POST("/loadings/:id/submit", s.SubmitLoading)
	api.POST("/loadings/:id/cancel", s.CancelLoading)
	api.PUT("/loadings/:id/status", s.UpdateLoadingStatus)

	api.POST("/distributions", s.CreateDistribution)
	api.GET("/distributions/:id", s.GetDistribution)
	api.POST("/distributions/:id/submit", s.SubmitDistribution)
	api.POST("/distributions/:id/cancel", s.CancelDistribution)
	api.GET("/distributions/:id/pending-items", s.GetDistributionPendingItems)
	api.POST("/distributions/:id/collections", s.MakeCollection)

	api.POST("/collections", s.CreateCollection)
	api.GET("/collections/:id", s.GetCollection)
	api.PUT("/collections/:id/items", s.UpdateCollectionQuantities)
	api.POST("/collections/:id/submit", s.SubmitCollection)
	api.POST("/collections/:id/cancel", s.CancelCollection)

	api.GET("/reports/book-ledger", s.GetBookLedger)
	api.GET("/reports/school-ledger", s.GetSchoolLedger)
	api.GET("/reports/vehicle-ledger", s.GetVehicleLedger)
	api.GET("/reports/pending-collection", s.GetPendingCollection)
}

// logWarnings records soft validation warnings returned to the caller.
func (s *Server) logWarnings(c echo.Context, warnings []kernel.Warning) {
	for _, w := range warnings {
		s.log.WithFields(logrus.Fields{"path": c.Path(), "item_code": w.ItemCode}).Warn(w.Message)
	}
}
