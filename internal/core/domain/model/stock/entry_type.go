package stock

import (
	"fmt"

	"booksamples/internal/pkg/errs"
)

// EntryType is the kind of inventory movement a stock entry performs.
type EntryType int

const (
	// EntryTypeUnknown catches uninitialized values.
	EntryTypeUnknown EntryType = iota

	// MaterialReceipt adds quantity to a target warehouse (opening stock).
	MaterialReceipt

	// MaterialTransfer moves quantity from a source to a target warehouse.
	MaterialTransfer

	// MaterialIssue removes quantity from a source warehouse (write-off).
	MaterialIssue
)

func getEntryTypeStrings() map[EntryType]string {
	return map[EntryType]string{
		EntryTypeUnknown: "Unknown",
		MaterialReceipt:  "Material Receipt",
		MaterialTransfer: "Material Transfer",
		MaterialIssue:    "Material Issue",
	}
}

// Validate rejects EntryTypeUnknown and out-of-range values.
func (t EntryType) Validate() error {
	if t < MaterialReceipt || t > MaterialIssue {
		return errs.NewValueIsInvalidErrorWithCause("entry type is invalid", fmt.Errorf("%d is not a valid entry type", t))
	}
	return nil
}

func (t EntryType) String() string {
	if str, ok := getEntryTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// needsSource reports whether lines of this type must name a source warehouse.
func (t EntryType) needsSource() bool {
	return t == MaterialTransfer || t == MaterialIssue
}

// needsTarget reports whether lines of this type must name a target warehouse.
func (t EntryType) needsTarget() bool {
	return t == MaterialTransfer || t == MaterialReceipt
}
