package http

import (
	"net/http"

	"booksamples/internal/core/application/usecases/commands"
	"booksamples/internal/core/application/usecases/queries"
	"booksamples/internal/core/domain/model/catalog"
	"booksamples/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

func (s *Server) CreateItem(c echo.Context) error {
	var req createItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	isSample := true
	if req.IsSampleBook != nil {
		isSample = *req.IsSampleBook
	}
	cmd, err := commands.NewCreateItemCommand(req.Code, req.Name, req.StockUOM, catalog.Details{
		Subject:      req.Subject,
		ClassGrades:  req.ClassGrades,
		Author:       req.Author,
		EditionYear:  req.EditionYear,
		ISBN:         req.ISBN,
		Publisher:    req.Publisher,
		IsSampleBook: isSample,
	})
	if err != nil {
		return err
	}

	if err = s.commands.CreateItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"code": req.Code})
}

func (s *Server) GetItemClassGrades(c echo.Context) error {
	query, err := queries.NewGetItemClassGradesQuery(c.Param("code"))
	if err != nil {
		return err
	}

	grades, err := s.queries.GetItemClassGrades.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, grades)
}

// GetStockBalance handles GET /api/v1/stock/balance?item_code=&warehouse=.
func (s *Server) GetStockBalance(c echo.Context) error {
	query, err := queries.NewGetStockBalanceQuery(c.QueryParam("item_code"), c.QueryParam("warehouse"))
	if err != nil {
		return err
	}

	balance, err := s.queries.GetStockBalance.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, balance)
}

// PostOpeningStock handles POST /api/v1/stock/receipts.
func (s *Server) PostOpeningStock(c echo.Context) error {
	var req openingStockRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	postingDate, err := parseDate(req.PostingDate)
	if err != nil {
		return err
	}

	lines := make([]commands.ReceiptLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, commands.ReceiptLine{ItemCode: item.ItemCode, Qty: item.Qty})
	}
	cmd, err := commands.NewPostOpeningStockCommand(kernel.NewUUID(), req.Warehouse, postingDate, lines)
	if err != nil {
		return err
	}

	entryID, err := s.commands.PostOpeningStock.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: entryID})
}
