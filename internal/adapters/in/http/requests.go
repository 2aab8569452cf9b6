package http

import (
	"strings"
	"time"

	"booksamples/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type createVehicleRequest struct {
	VehicleNumber string `json:"vehicle_number" validate:"required"`
	VehicleType   string `json:"vehicle_type"`
	DriverName    string `json:"driver_name"`
	DriverPhone   string `json:"driver_phone"`
}

type createSchoolRequest struct {
	Name      string `json:"name" validate:"required"`
	Board     string `json:"board"`
	Principal string `json:"principal"`
	Phone     string `json:"phone"`
	Mobile    string `json:"mobile"`
	Email     string `json:"email" validate:"omitempty,email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	AreaZone  string `json:"area_zone"`
}

type createItemRequest struct {
	Code         string   `json:"code" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	StockUOM     string   `json:"stock_uom"`
	Subject      string   `json:"subject"`
	ClassGrades  []string `json:"class_grades" validate:"dive,required"`
	Author       string   `json:"author"`
	EditionYear  int      `json:"edition_year" validate:"gte=0"`
	ISBN         string   `json:"isbn"`
	Publisher    string   `json:"publisher"`
	IsSampleBook *bool    `json:"is_sample_book"`
}

type receiptLineRequest struct {
	ItemCode string          `json:"item_code" validate:"required"`
	Qty      decimal.Decimal `json:"qty"`
}

type openingStockRequest struct {
	Warehouse   string               `json:"warehouse" validate:"required"`
	PostingDate string               `json:"posting_date" validate:"required,datetime=2006-01-02"`
	Items       []receiptLineRequest `json:"items" validate:"required,min=1,dive"`
}

type itemLineRequest struct {
	ItemCode           string          `json:"item_code" validate:"required"`
	Qty                decimal.Decimal `json:"qty"`
	ExpectedReturnDate string          `json:"expected_return_date" validate:"omitempty,datetime=2006-01-02"`
}

type createLoadingRequest struct {
	VehicleID       string            `json:"vehicle_id" validate:"required,uuid"`
	DriverName      string            `json:"driver_name"`
	LoadingDate     string            `json:"loading_date" validate:"required,datetime=2006-01-02"`
	SourceWarehouse string            `json:"source_warehouse" validate:"required"`
	TargetWarehouse string            `json:"target_warehouse"`
	Items           []itemLineRequest `json:"items" validate:"required,min=1,dive"`
}

type updateLoadingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type createDistributionRequest struct {
	SchoolID           string            `json:"school_id" validate:"required,uuid"`
	VehicleID          string            `json:"vehicle_id" validate:"omitempty,uuid"`
	LoadingID          string            `json:"loading_id" validate:"omitempty,uuid"`
	DistributorName    string            `json:"distributor_name"`
	DistributionDate   string            `json:"distribution_date" validate:"required,datetime=2006-01-02"`
	ExpectedReturnDate string            `json:"expected_return_date" validate:"omitempty,datetime=2006-01-02"`
	SourceWarehouse    string            `json:"source_warehouse"`
	TargetWarehouse    string            `json:"target_warehouse"`
	Items              []itemLineRequest `json:"items" validate:"required,min=1,dive"`
}

type makeCollectionRequest struct {
	CollectionDate  string `json:"collection_date" validate:"omitempty,datetime=2006-01-02"`
	TargetWarehouse string `json:"target_warehouse"`
}

type collectionQuantitiesRequest struct {
	ItemCode     string          `json:"item_code" validate:"required"`
	QtyCollected decimal.Decimal `json:"qty_collected"`
	QtyDamaged   decimal.Decimal `json:"qty_damaged"`
	QtyLost      decimal.Decimal `json:"qty_lost"`
}

type collectionLineRequest struct {
	collectionQuantitiesRequest

	QtyDistributed         decimal.Decimal `json:"qty_distributed"`
	QtyPreviouslyCollected decimal.Decimal `json:"qty_previously_collected"`
	QtyPending             decimal.Decimal `json:"qty_pending"`
}

type createCollectionRequest struct {
	SchoolID        string                  `json:"school_id" validate:"omitempty,uuid"`
	DistributionID  string                  `json:"distribution_id" validate:"omitempty,uuid"`
	VehicleID       string                  `json:"vehicle_id" validate:"omitempty,uuid"`
	CollectorName   string                  `json:"collector_name"`
	CollectionDate  string                  `json:"collection_date" validate:"required,datetime=2006-01-02"`
	SourceWarehouse string                  `json:"source_warehouse"`
	TargetWarehouse string                  `json:"target_warehouse"`
	Items           []collectionLineRequest `json:"items" validate:"required,min=1,dive"`
}

type updateCollectionItemsRequest struct {
	Items []collectionQuantitiesRequest `json:"items" validate:"required,min=1,dive"`
}

type reportRequest struct {
	FromDate    string `query:"from_date" validate:"omitempty,datetime=2006-01-02"`
	ToDate      string `query:"to_date" validate:"omitempty,datetime=2006-01-02"`
	ItemCode    string `query:"item_code"`
	Vehicle     string `query:"vehicle" validate:"omitempty,uuid"`
	School      string `query:"school" validate:"omitempty,uuid"`
	ClassGrade  string `query:"class_grade"`
	AreaZone    string `query:"area_zone"`
	OverdueOnly bool   `query:"overdue_only"`
	Format      string `query:"format" validate:"omitempty,oneof=json xlsx"`
}

// createdResponse answers every document creation.
type createdResponse struct {
	ID       kernel.UUID      `json:"id"`
	Warnings []kernel.Warning `json:"warnings,omitempty"`
}

type warningsResponse struct {
	Warnings []kernel.Warning `json:"warnings"`
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}

func pathID(c echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return kernel.UUID{}, badRequest("invalid id", err)
	}
	return id, nil
}

// optionalID parses an id that was already checked by the validator.
func optionalID(s string) (*kernel.UUID, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil //nolint:nilnil // absent reference is not an error
	}
	id, err := kernel.UUIDFromString(s)
	if err != nil {
		return nil, badRequest("invalid id", err)
	}
	return &id, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, badRequest("invalid date", err)
	}
	return t, nil
}

func optionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil //nolint:nilnil // absent date is not an error
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
