package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"booksamples/internal/core/domain/model/catalog"
	"booksamples/internal/core/ports"
	"booksamples/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ItemLine is a requested quantity of one catalog item. ExpectedReturnDate
// is only read by distributions.
type ItemLine struct {
	ItemCode           string
	Qty                decimal.Decimal
	ExpectedReturnDate *time.Time
}

func validateItemLines(lines []ItemLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	var problems []error
	for i, l := range lines {
		if strings.TrimSpace(l.ItemCode) == "" {
			problems = append(problems, errs.NewValueIsRequiredError(fmt.Sprintf("item code of line %d", i+1)))
		}
	}
	return errors.Join(problems...)
}

func itemCodes(lines []ItemLine) []string {
	codes := make([]string, 0, len(lines))
	for _, l := range lines {
		codes = append(codes, l.ItemCode)
	}
	return codes
}

// lookupItems loads every catalog item named by lines, once per code.
func lookupItems(ctx context.Context, repo ports.CatalogRepository, lines []ItemLine) (map[string]*catalog.Item, error) {
	items := make(map[string]*catalog.Item, len(lines))
	for _, l := range lines {
		if _, ok := items[l.ItemCode]; ok {
			continue
		}
		item, err := repo.GetItem(ctx, l.ItemCode)
		if err != nil {
			return nil, err
		}
		items[l.ItemCode] = item
	}
	return items, nil
}
