package http

import (
	"net/http"

	"booksamples/internal/core/application/usecases/commands"
	"booksamples/internal/core/application/usecases/queries"
	"booksamples/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateVehicle handles POST /api/v1/vehicles. The vehicle's warehouse is
// provisioned in the same request.
func (s *Server) CreateVehicle(c echo.Context) error {
	var req createVehicleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateVehicleCommand(kernel.NewUUID(), req.VehicleNumber, req.VehicleType,
		req.DriverName, req.DriverPhone)
	if err != nil {
		return err
	}
	if err = s.commands.CreateVehicle.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: cmd.VehicleID()})
}

func (s *Server) GetVehicle(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetVehicleQuery(id)
	if err != nil {
		return err
	}

	v, err := s.queries.GetVehicle.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

// ProvisionVehicleWarehouse handles POST /api/v1/vehicles/:id/warehouse.
func (s *Server) ProvisionVehicleWarehouse(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewProvisionVehicleWarehouseCommand(id)
	if err != nil {
		return err
	}

	warehouse, err := s.commands.ProvisionVehicleWarehouse.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"warehouse": warehouse})
}

func (s *Server) GetVehicleStock(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetVehicleStockQuery(id)
	if err != nil {
		return err
	}

	stock, err := s.queries.GetVehicleStock.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stock)
}

// GetVehicleItems handles GET /api/v1/vehicles/:id/items?class_grade=.
func (s *Server) GetVehicleItems(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetVehicleItemsQuery(id, c.QueryParam("class_grade"))
	if err != nil {
		return err
	}

	items, err := s.queries.GetVehicleItems.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}
