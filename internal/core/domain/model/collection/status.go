package collection

import (
	"fmt"

	"booksamples/internal/pkg/errs"
)

// Status is the business status of a collection.
type Status int

const (
	Unknown Status = iota
	Draft
	Collected
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Collected: "Collected",
		Cancelled: "Cancelled",
	}
}

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
