package queries

import (
	"errors"
	"strings"
	"time"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/pkg/errs"
	"booksamples/internal/pkg/guard"
)

var ErrReportQueryIsNotConstructed = errors.New(
	"ReportQuery must be created via NewReportQuery constructor",
)

// ReportFilter narrows the sample reports. Zero values mean "no filter".
// Not every report honours every field.
type ReportFilter struct {
	FromDate    *time.Time
	ToDate      *time.Time
	ItemCode    string
	VehicleID   *kernel.UUID
	SchoolID    *kernel.UUID
	ClassGrade  string
	AreaZone    string
	OverdueOnly bool
}

// ReportQuery is shared by the ledger and pending collection reports.
type ReportQuery struct {
	filter ReportFilter

	guard guard.ConstructorGuard
}

func NewReportQuery(filter ReportFilter) (ReportQuery, error) {
	if filter.FromDate != nil && filter.ToDate != nil && filter.ToDate.Before(*filter.FromDate) {
		return ReportQuery{}, errs.NewValueIsOutOfRangeError("to date", *filter.ToDate, *filter.FromDate, nil)
	}
	for _, id := range []*kernel.UUID{filter.VehicleID, filter.SchoolID} {
		if id == nil {
			continue
		}
		if err := id.Validate(); err != nil {
			return ReportQuery{}, err
		}
	}

	filter.ItemCode = strings.TrimSpace(filter.ItemCode)
	filter.ClassGrade = strings.TrimSpace(filter.ClassGrade)
	filter.AreaZone = strings.TrimSpace(filter.AreaZone)

	return ReportQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ReportQuery) Validate() error {
	return q.guard.Validate(ErrReportQueryIsNotConstructed)
}

func (q ReportQuery) Filter() ReportFilter {
	return q.filter
}
