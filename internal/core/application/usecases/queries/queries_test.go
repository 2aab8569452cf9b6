package queries_test

import (
	"testing"
	"time"

	"booksamples/internal/core/application/usecases/queries"
	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReportQuery(t *testing.T) {
	from := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("trims text filters", func(t *testing.T) {
		query, err := queries.NewReportQuery(queries.ReportFilter{ItemCode: " MATH-5 ", AreaZone: " North "})

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, "MATH-5", query.Filter().ItemCode)
		assert.Equal(t, "North", query.Filter().AreaZone)
	})

	t.Run("to date before from date", func(t *testing.T) {
		_, err := queries.NewReportQuery(queries.ReportFilter{FromDate: &from, ToDate: &to})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("empty vehicle id", func(t *testing.T) {
		_, err := queries.NewReportQuery(queries.ReportFilter{VehicleID: &kernel.UUID{}})

		require.Error(t, err)
	})
}

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	tests := []struct {
		name  string
		query interface{ Validate() error }
		want  error
	}{
		{"loading", queries.GetLoadingQuery{}, queries.ErrGetLoadingQueryIsNotConstructed},
		{"distribution", queries.GetDistributionQuery{}, queries.ErrGetDistributionQueryIsNotConstructed},
		{"collection", queries.GetCollectionQuery{}, queries.ErrGetCollectionQueryIsNotConstructed},
		{"vehicle", queries.GetVehicleQuery{}, queries.ErrGetVehicleQueryIsNotConstructed},
		{"vehicle stock", queries.GetVehicleStockQuery{}, queries.ErrGetVehicleStockQueryIsNotConstructed},
		{"vehicle items", queries.GetVehicleItemsQuery{}, queries.ErrGetVehicleItemsQueryIsNotConstructed},
		{"class grades", queries.GetItemClassGradesQuery{}, queries.ErrGetItemClassGradesQueryIsNotConstructed},
		{"stock balance", queries.GetStockBalanceQuery{}, queries.ErrGetStockBalanceQueryIsNotConstructed},
		{"school pending", queries.GetSchoolPendingQuery{}, queries.ErrGetSchoolPendingQueryIsNotConstructed},
		{
			"distribution pending items",
			queries.GetDistributionPendingItemsQuery{},
			queries.ErrGetDistributionPendingItemsQueryIsNotConstructed,
		},
		{"report", queries.ReportQuery{}, queries.ErrReportQueryIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.query.Validate(), tt.want)
		})
	}
}

func TestNewGetStockBalanceQuery_RequiresItemAndWarehouse(t *testing.T) {
	_, err := queries.NewGetStockBalanceQuery("", "Main Store")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewGetStockBalanceQuery("MATH-5", " ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
