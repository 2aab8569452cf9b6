package http

import (
	"net/http"

	"booksamples/internal/core/application/usecases/commands"
	"booksamples/internal/core/application/usecases/queries"
	"booksamples/internal/core/domain/model/collection"
	"booksamples/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

func (r collectionQuantitiesRequest) quantities() collection.Quantities {
	return collection.Quantities{Collected: r.QtyCollected, Damaged: r.QtyDamaged, Lost: r.QtyLost}
}

// CreateCollection handles POST /api/v1/collections. Lines of a collection
// that references a distribution take their snapshot from it; standalone
// collections use the quantities sent by the client.
func (s *Server) CreateCollection(c echo.Context) error {
	var req createCollectionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	header := collection.Header{
		CollectorName:   req.CollectorName,
		SourceWarehouse: req.SourceWarehouse,
		TargetWarehouse: req.TargetWarehouse,
	}
	schoolID, err := optionalID(req.SchoolID)
	if err != nil {
		return err
	}
	if schoolID != nil {
		header.SchoolID = *schoolID
	}
	if header.DistributionID, err = optionalID(req.DistributionID); err != nil {
		return err
	}
	if header.VehicleID, err = optionalID(req.VehicleID); err != nil {
		return err
	}
	if header.CollectionDate, err = parseDate(req.CollectionDate); err != nil {
		return err
	}

	lines := make([]commands.CollectionLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, commands.CollectionLine{
			ItemCode:               item.ItemCode,
			Quantities:             item.quantities(),
			QtyDistributed:         item.QtyDistributed,
			QtyPreviouslyCollected: item.QtyPreviouslyCollected,
			QtyPending:             item.QtyPending,
		})
	}

	cmd, err := commands.NewCreateCollectionCommand(kernel.NewUUID(), header, lines)
	if err != nil {
		return err
	}
	if err = s.commands.CreateCollection.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: cmd.CollectionID()})
}

func (s *Server) GetCollection(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetCollectionQuery(id)
	if err != nil {
		return err
	}

	col, err := s.queries.GetCollection.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, col)
}

// UpdateCollectionQuantities handles PUT /api/v1/collections/:id/items.
func (s *Server) UpdateCollectionQuantities(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req updateCollectionItemsRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	updates := make([]collection.QuantityUpdate, 0, len(req.Items))
	for _, item := range req.Items {
		updates = append(updates, collection.QuantityUpdate{ItemCode: item.ItemCode, Quantities: item.quantities()})
	}
	cmd, err := commands.NewUpdateCollectionQuantitiesCommand(id, updates)
	if err != nil {
		return err
	}

	if err = s.commands.UpdateCollectionQuantities.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) SubmitCollection(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewSubmitCollectionCommand(id)
	if err != nil {
		return err
	}

	if err = s.commands.SubmitCollection.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) CancelCollection(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCancelCollectionCommand(id)
	if err != nil {
		return err
	}

	if err = s.commands.CancelCollection.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
