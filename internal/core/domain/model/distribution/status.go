package distribution

import (
	"fmt"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Status is the overall collection progress of a distribution. It is never
// set directly: DeriveStatus computes it from the document status and totals.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Draft
	Distributed
	PartiallyCollected
	FullyCollected
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "Unknown",
		Draft:              "Draft",
		Distributed:        "Distributed",
		PartiallyCollected: "Partially Collected",
		FullyCollected:     "Fully Collected",
		Cancelled:          "Cancelled",
	}
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s < Draft || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsOutstanding reports whether samples of the distribution are still at the school.
func (s Status) IsOutstanding() bool {
	return s == Distributed || s == PartiallyCollected
}

// DeriveStatus computes the overall status:
//
//	cancelled document          → Cancelled
//	draft document              → Draft
//	total pending ≤ 0           → Fully Collected
//	total collected > 0         → Partially Collected
//	otherwise                   → Distributed
func DeriveStatus(docStatus kernel.DocStatus, totalPending, totalCollected decimal.Decimal) Status {
	switch {
	case docStatus.IsCancelled():
		return Cancelled
	case !docStatus.IsSubmitted():
		return Draft
	case !totalPending.IsPositive():
		return FullyCollected
	case totalCollected.IsPositive():
		return PartiallyCollected
	default:
		return Distributed
	}
}

// CollectionStatus is the per-line collection progress.
type CollectionStatus int

const (
	// CollectionUnknown catches uninitialized values.
	CollectionUnknown CollectionStatus = iota
	Pending
	Partial
	Collected
)

func getCollectionStatusStrings() map[CollectionStatus]string {
	return map[CollectionStatus]string{
		CollectionUnknown: "Unknown",
		Pending:           "Pending",
		Partial:           "Partial",
		Collected:         "Collected",
	}
}

// Validate rejects CollectionUnknown and out-of-range values.
func (s CollectionStatus) Validate() error {
	if s < Pending || s > Collected {
		return errs.NewValueIsInvalidErrorWithCause("collection status is invalid", fmt.Errorf("%d is not a valid collection status", s))
	}
	return nil
}

func (s CollectionStatus) String() string {
	if str, ok := getCollectionStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// deriveCollectionStatus maps collected vs distributed quantity to a status.
func deriveCollectionStatus(qty, collected decimal.Decimal) CollectionStatus {
	switch {
	case !collected.IsPositive():
		return Pending
	case collected.GreaterThanOrEqual(qty):
		return Collected
	default:
		return Partial
	}
}
