package kernel

import "time"

// Warning is a non-fatal validation message. Validation returns warnings
// next to the error so the caller can surface them without aborting the save,
// for example when the source warehouse holds less stock than requested.
type Warning struct {
	ItemCode string `json:"item_code,omitempty"`
	Message  string `json:"message"`
}

// DateOf truncates t to midnight UTC. Posting, distribution and return dates
// are calendar dates and are compared without a time component.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
