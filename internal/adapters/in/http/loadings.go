package http

import (
	"net/http"

	"booksamples/internal/core/application/usecases/commands"
	"booksamples/internal/core/application/usecases/queries"
	"booksamples/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

func itemLines(reqs []itemLineRequest) ([]commands.ItemLine, error) {
	lines := make([]commands.ItemLine, 0, len(reqs))
	for _, r := range reqs {
		expected, err := optionalDate(r.ExpectedReturnDate)
		if err != nil {
			return nil, err
		}
		lines = append(lines, commands.ItemLine{ItemCode: r.ItemCode, Qty: r.Qty, ExpectedReturnDate: expected})
	}
	return lines, nil
}

// CreateLoading handles POST /api/v1/loadings. Stock shortfalls are
// returned as warnings; the draft is saved regardless.
func (s *Server) CreateLoading(c echo.Context) error {
	var req createLoadingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	vehicleID, err := kernel.UUIDFromString(req.VehicleID)
	if err != nil {
		return badRequest("invalid vehicle_id", err)
	}
	loadingDate, err := parseDate(req.LoadingDate)
	if err != nil {
		return err
	}
	lines, err := itemLines(req.Items)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateLoadingCommand(kernel.NewUUID(), vehicleID, req.DriverName, loadingDate,
		req.SourceWarehouse, req.TargetWarehouse, lines)
	if err != nil {
		return err
	}

	warnings, err := s.commands.CreateLoading.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	s.logWarnings(c, warnings)
	return c.JSON(http.StatusCreated, createdResponse{ID: cmd.LoadingID(), Warnings: warnings})
}

func (s *Server) GetLoading(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetLoadingQuery(id)
	if err != nil {
		return err
	}

	l, err := s.queries.GetLoading.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, l)
}

func (s *Server) SubmitLoading(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewSubmitLoadingCommand(id)
	if err != nil {
		return err
	}

	warnings, err := s.commands.SubmitLoading.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	s.logWarnings(c, warnings)
	return c.JSON(http.StatusOK, warningsResponse{Warnings: warnings})
}

func (s *Server) CancelLoading(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCancelLoadingCommand(id)
	if err != nil {
		return err
	}

	if err = s.commands.CancelLoading.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateLoadingStatus handles PUT /api/v1/loadings/:id/status with a body
// such as {"status": "In Transit"}.
func (s *Server) UpdateLoadingStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req updateLoadingStatusRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewUpdateLoadingStatusCommand(id, req.Status)
	if err != nil {
		return err
	}

	if err = s.commands.UpdateLoadingStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
