package loading

import (
	"errors"
	"fmt"

	"booksamples/internal/pkg/errs"
)

// ErrInvalidLoadingStatus is returned when a status update names a status
// outside Loaded, In Transit and Returned.
var ErrInvalidLoadingStatus = errors.New("invalid status")

// Status is the business status of a loading.
//
//	Draft ──submit──> Loaded ⇄ In Transit ⇄ Returned
//	                    │
//	                    └──cancel──> Cancelled
//
// Loaded, In Transit and Returned may be set freely once the document is
// submitted; they describe where the van is, not what stock has moved.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Draft loadings have not moved stock.
	Draft

	// Loaded is set on submit, after the transfer into the van.
	Loaded

	// InTransit marks a van on its route.
	InTransit

	// Returned marks a van back at the depot.
	Returned

	// Cancelled is set when the loading's transfer is reversed.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Loaded:    "Loaded",
		InTransit: "In Transit",
		Returned:  "Returned",
		Cancelled: "Cancelled",
	}
}

// getSettableStatuses lists the statuses accepted by UpdateStatus.
func getSettableStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Loaded:    {},
		InTransit: {},
		Returned:  {},
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

// ParseStatus maps a display name such as "In Transit" to its Status.
// Unrecognised names yield Unknown.
func ParseStatus(name string) Status {
	for s, str := range getStatusStrings() {
		if str == name && s != Unknown {
			return s
		}
	}
	return Unknown
}

// validateSettable checks that s may be assigned through UpdateStatus.
func (s Status) validateSettable() error {
	if _, ok := getSettableStatuses()[s]; !ok {
		return fmt.Errorf("%w: %s", ErrInvalidLoadingStatus, s)
	}
	return nil
}
