package http

import (
	"bytes"
	"fmt"
	"net/http"

	"booksamples/internal/adapters/out/xlsxexport"
	"booksamples/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

func (s *Server) reportQuery(c echo.Context) (queries.ReportQuery, string, error) {
	var req reportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return queries.ReportQuery{}, "", err
	}

	filter := queries.ReportFilter{
		ItemCode:    req.ItemCode,
		ClassGrade:  req.ClassGrade,
		AreaZone:    req.AreaZone,
		OverdueOnly: req.OverdueOnly,
	}
	var err error
	if filter.FromDate, err = optionalDate(req.FromDate); err != nil {
		return queries.ReportQuery{}, "", err
	}
	if filter.ToDate, err = optionalDate(req.ToDate); err != nil {
		return queries.ReportQuery{}, "", err
	}
	if filter.VehicleID, err = optionalID(req.Vehicle); err != nil {
		return queries.ReportQuery{}, "", err
	}
	if filter.SchoolID, err = optionalID(req.School); err != nil {
		return queries.ReportQuery{}, "", err
	}

	query, err := queries.NewReportQuery(filter)
	return query, req.Format, err
}

// respondReport writes rows as JSON, or as a workbook when format is xlsx.
func respondReport[R any](c echo.Context, format, filename string, rows []R, sheet func([]R) xlsxexport.Sheet) error {
	if format != "xlsx" {
		return c.JSON(http.StatusOK, rows)
	}

	var buf bytes.Buffer
	if err := xlsxexport.Write(&buf, sheet(rows)); err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s.xlsx", filename))
	return c.Blob(http.StatusOK, xlsxexport.ContentType, buf.Bytes())
}

func (s *Server) GetBookLedger(c echo.Context) error {
	query, format, err := s.reportQuery(c)
	if err != nil {
		return err
	}
	rows, err := s.queries.GetBookLedger.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return respondReport(c, format, "book-sample-ledger", rows, xlsxexport.BookLedger)
}

func (s *Server) GetSchoolLedger(c echo.Context) error {
	query, format, err := s.reportQuery(c)
	if err != nil {
		return err
	}
	rows, err := s.queries.GetSchoolLedger.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return respondReport(c, format, "school-sample-ledger", rows, xlsxexport.SchoolLedger)
}

func (s *Server) GetVehicleLedger(c echo.Context) error {
	query, format, err := s.reportQuery(c)
	if err != nil {
		return err
	}
	rows, err := s.queries.GetVehicleLedger.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return respondReport(c, format, "vehicle-sample-ledger", rows, xlsxexport.VehicleLedger)
}

func (s *Server) GetPendingCollection(c echo.Context) error {
	query, format, err := s.reportQuery(c)
	if err != nil {
		return err
	}
	items, err := s.queries.GetPendingCollection.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return respondReport(c, format, "pending-sample-collection", items, xlsxexport.PendingCollection)
}
