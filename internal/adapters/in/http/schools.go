package http

import (
	"net/http"

	"booksamples/internal/core/application/usecases/commands"
	"booksamples/internal/core/application/usecases/queries"
	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/school"

	"github.com/labstack/echo/v4"
)

func (s *Server) CreateSchool(c echo.Context) error {
	var req createSchoolRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateSchoolCommand(kernel.NewUUID(), req.Name, req.Board,
		school.Contact{Principal: req.Principal, Phone: req.Phone, Mobile: req.Mobile, Email: req.Email},
		school.Address{Line: req.Address, City: req.City, AreaZone: req.AreaZone})
	if err != nil {
		return err
	}

	warnings, err := s.commands.CreateSchool.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	s.logWarnings(c, warnings)
	return c.JSON(http.StatusCreated, createdResponse{ID: cmd.SchoolID(), Warnings: warnings})
}

// CreateSchoolCustomer handles POST /api/v1/schools/:id/customer.
func (s *Server) CreateSchoolCustomer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCreateSchoolCustomerCommand(id, kernel.NewUUID())
	if err != nil {
		return err
	}

	if err = s.commands.CreateSchoolCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: cmd.CustomerID()})
}

func (s *Server) GetSchoolPendingSamples(c echo.Context) error {
	query, err := s.schoolPendingQuery(c)
	if err != nil {
		return err
	}

	items, err := s.queries.GetSchoolPendingSamples.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (s *Server) GetSchoolPendingDistributions(c echo.Context) error {
	query, err := s.schoolPendingQuery(c)
	if err != nil {
		return err
	}

	distributions, err := s.queries.GetSchoolPendingDistributions.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, distributions)
}

func (s *Server) schoolPendingQuery(c echo.Context) (queries.GetSchoolPendingQuery, error) {
	id, err := pathID(c)
	if err != nil {
		return queries.GetSchoolPendingQuery{}, err
	}
	return queries.NewGetSchoolPendingQuery(id)
}
