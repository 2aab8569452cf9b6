package http

import (
	"net/http"
	"time"

	"booksamples/internal/core/application/usecases/commands"
	"booksamples/internal/core/application/usecases/queries"
	"booksamples/internal/core/domain/model/distribution"
	"booksamples/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

func (s *Server) CreateDistribution(c echo.Context) error {
	var req createDistributionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	schoolID, err := kernel.UUIDFromString(req.SchoolID)
	if err != nil {
		return badRequest("invalid school_id", err)
	}
	header := distribution.Header{
		SchoolID:        schoolID,
		DistributorName: req.DistributorName,
		SourceWarehouse: req.SourceWarehouse,
		TargetWarehouse: req.TargetWarehouse,
	}
	if header.VehicleID, err = optionalID(req.VehicleID); err != nil {
		return err
	}
	if header.LoadingID, err = optionalID(req.LoadingID); err != nil {
		return err
	}
	if header.DistributionDate, err = parseDate(req.DistributionDate); err != nil {
		return err
	}
	if header.ExpectedReturnDate, err = optionalDate(req.ExpectedReturnDate); err != nil {
		return err
	}
	lines, err := itemLines(req.Items)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateDistributionCommand(kernel.NewUUID(), header, lines)
	if err != nil {
		return err
	}

	warnings, err := s.commands.CreateDistribution.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	s.logWarnings(c, warnings)
	return c.JSON(http.StatusCreated, createdResponse{ID: cmd.DistributionID(), Warnings: warnings})
}

func (s *Server) GetDistribution(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetDistributionQuery(id)
	if err != nil {
		return err
	}

	d, err := s.queries.GetDistribution.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

func (s *Server) SubmitDistribution(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewSubmitDistributionCommand(id)
	if err != nil {
		return err
	}

	warnings, err := s.commands.SubmitDistribution.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	s.logWarnings(c, warnings)
	return c.JSON(http.StatusOK, warningsResponse{Warnings: warnings})
}

func (s *Server) CancelDistribution(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCancelDistributionCommand(id)
	if err != nil {
		return err
	}

	if err = s.commands.CancelDistribution.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) GetDistributionPendingItems(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetDistributionPendingItemsQuery(id)
	if err != nil {
		return err
	}

	items, err := s.queries.GetDistributionPendingItems.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// MakeCollection handles POST /api/v1/distributions/:id/collections: it
// drafts a collection prefilled with every pending line. The collection
// date defaults to today.
func (s *Server) MakeCollection(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req makeCollectionRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}
	collectionDate := kernel.DateOf(time.Now())
	if req.CollectionDate != "" {
		if collectionDate, err = parseDate(req.CollectionDate); err != nil {
			return err
		}
	}

	cmd, err := commands.NewMakeCollectionCommand(kernel.NewUUID(), id, collectionDate, req.TargetWarehouse)
	if err != nil {
		return err
	}
	if err = s.commands.MakeCollection.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: cmd.CollectionID()})
}
