package http

import (
	"errors"
	"net/http"

	"booksamples/internal/core/domain/model/collection"
	"booksamples/internal/core/domain/model/distribution"
	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/loading"
	"booksamples/internal/core/domain/model/school"
	"booksamples/internal/core/domain/model/stock"
	"booksamples/internal/core/domain/model/vehicle"
	"booksamples/internal/core/domain/services"
	"booksamples/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func badRequest(msg string, cause error) error {
	if cause != nil {
		msg += ": " + cause.Error()
	}
	return echo.NewHTTPError(http.StatusBadRequest, msg)
}

// unprocessable lists the sentinels of business rule violations.
var unprocessable = []error{
	errs.ErrValueIsRequired,
	errs.ErrValueIsInvalid,
	errs.ErrValueIsOutOfRange,
	kernel.ErrNoItems,
	kernel.ErrSameWarehouse,
	kernel.ErrNotDraft,
	kernel.ErrNotSubmitted,
	loading.ErrInvalidLoadingStatus,
	distribution.ErrItemNotInDistribution,
	distribution.ErrDuplicateItem,
	collection.ErrNegativeQuantity,
	collection.ErrExceedsPending,
	collection.ErrSchoolMismatch,
	collection.ErrAlreadyFullyCollected,
	collection.ErrNothingPending,
	collection.ErrItemNotInCollection,
	school.ErrCustomerAlreadyLinked,
	vehicle.ErrVehicleHasNoWarehouse,
	stock.ErrNoCompany,
	stock.ErrEntryHasNoLines,
	services.ErrInsufficientStock,
}

// StatusFor maps an error returned by a use case to its HTTP status.
func StatusFor(err error) int {
	var httpErr *echo.HTTPError
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.As(err, &validationErrs):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	}
	for _, target := range unprocessable {
		if errors.Is(err, target) {
			return http.StatusUnprocessableEntity
		}
	}
	return http.StatusInternalServerError
}

// handleHTTPError writes every error as an ErrorResponse. Internal errors
// are logged and hidden from the client.
func (s *Server) handleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := StatusFor(err)
	msg := err.Error()
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if m, ok := httpErr.Message.(string); ok {
			msg = m
		}
	}
	if code == http.StatusInternalServerError {
		s.log.WithError(err).WithField("path", c.Path()).Error("request failed")
		msg = http.StatusText(code)
	}

	if writeErr := c.JSON(code, ErrorResponse{Code: code, Message: msg}); writeErr != nil {
		s.log.WithError(writeErr).Error("failed to write error response")
	}
}
