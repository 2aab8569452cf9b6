package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// PendingItem is an outstanding distribution line of the Pending Sample
// Collection report.
type PendingItem struct {
	School             string          `json:"school"`
	DistributionID     string          `json:"distribution_id"`
	DistributionDate   time.Time       `json:"distribution_date"`
	ItemCode           string          `json:"item_code"`
	ItemName           string          `json:"item_name"`
	ClassGrade         string          `json:"class_grade"`
	QtyDistributed     decimal.Decimal `json:"qty_distributed"`
	QtyCollected       decimal.Decimal `json:"qty_collected"`
	QtyPending         decimal.Decimal `json:"qty_pending"`
	ExpectedReturnDate *time.Time      `json:"expected_return_date,omitempty"`
	DaysOverdue        int             `json:"days_overdue"`
	DistributorName    string          `json:"distributor_name"`
	AreaZone           string          `json:"area_zone"`
}

// DaysOverdue returns the whole days between expected and today, 0 when the
// date is unset or not yet passed.
func DaysOverdue(expected *time.Time, today time.Time) int {
	if expected == nil {
		return 0
	}

	due := time.Date(expected.Year(), expected.Month(), expected.Day(), 0, 0, 0, 0, time.UTC)
	now := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	days := int(now.Sub(due).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// WithDaysOverdue fills DaysOverdue of every item relative to today.
func WithDaysOverdue(items []PendingItem, today time.Time) []PendingItem {
	out := make([]PendingItem, len(items))
	for i, item := range items {
		item.DaysOverdue = DaysOverdue(item.ExpectedReturnDate, today)
		out[i] = item
	}
	return out
}

// OverdueSummary aggregates overdue lines per school.
type OverdueSummary struct {
	School   string          `json:"school"`
	Lines    int             `json:"lines"`
	TotalQty decimal.Decimal `json:"total_qty"`
}

// SummarizeOverdue groups lines with DaysOverdue > 0 by school, in order of
// first appearance.
func SummarizeOverdue(items []PendingItem) []OverdueSummary {
	index := make(map[string]int)
	var summaries []OverdueSummary
	for _, item := range items {
		if item.DaysOverdue <= 0 {
			continue
		}
		i, ok := index[item.School]
		if !ok {
			i = len(summaries)
			index[item.School] = i
			summaries = append(summaries, OverdueSummary{School: item.School, TotalQty: decimal.Zero})
		}
		summaries[i].Lines++
		summaries[i].TotalQty = summaries[i].TotalQty.Add(item.QtyPending)
	}
	return summaries
}
