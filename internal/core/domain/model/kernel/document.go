package kernel

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrNoItems is returned when a stock-moving document has no lines.
	ErrNoItems = errors.New("please add at least one item")

	// ErrSameWarehouse is returned when source and target warehouse are equal.
	ErrSameWarehouse = errors.New("source and target warehouse cannot be the same")
)

// InsufficientStockWarning is the soft warning raised when a warehouse holds
// less than a line requests.
func InsufficientStockWarning(itemCode string, available, required decimal.Decimal) Warning {
	return Warning{
		ItemCode: itemCode,
		Message: fmt.Sprintf("Insufficient stock for %s. Available: %s, Required: %s",
			itemCode, available.String(), required.String()),
	}
}

// CheckWarehouses validates a source/target pair of a transfer.
func CheckWarehouses(source, target string) error {
	if source != "" && source == target {
		return fmt.Errorf("%w: %s", ErrSameWarehouse, source)
	}
	return nil
}
