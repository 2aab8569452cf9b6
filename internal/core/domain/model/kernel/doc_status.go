package kernel

import (
	"errors"
	"fmt"

	"booksamples/internal/pkg/errs"
)

var (
	// ErrNotDraft is returned when a draft-only operation runs on a submitted or cancelled document.
	ErrNotDraft = errors.New("document is not a draft")

	// ErrNotSubmitted is returned when an operation requires a submitted document.
	ErrNotSubmitted = errors.New("document is not submitted")
)

// DocStatus is the lifecycle shared by every stock-moving document:
//
//	Draft ──> Submitted ──> Cancelled
//
// Only drafts may be edited or submitted. Only submitted documents may be
// cancelled. Cancelled is final.
type DocStatus int

const (
	// DocStatusUnknown catches uninitialized values.
	DocStatusUnknown DocStatus = iota

	// Draft documents are editable and have not moved any stock.
	Draft

	// Submitted documents have posted their stock movements.
	Submitted

	// Cancelled documents have reversed their stock movements.
	Cancelled
)

func getDocStatusStrings() map[DocStatus]string {
	return map[DocStatus]string{
		DocStatusUnknown: "Unknown",
		Draft:            "Draft",
		Submitted:        "Submitted",
		Cancelled:        "Cancelled",
	}
}

// Validate rejects DocStatusUnknown and out-of-range values.
func (s DocStatus) Validate() error {
	if s < Draft || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("doc status is invalid", fmt.Errorf("%d is not a valid doc status", s))
	}
	return nil
}

// String returns the display name, "Unknown" for invalid values.
func (s DocStatus) String() string {
	if str, ok := getDocStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsDraft reports whether the document is still editable.
func (s DocStatus) IsDraft() bool { return s == Draft }

// IsSubmitted reports whether the document's movements are in effect.
func (s DocStatus) IsSubmitted() bool { return s == Submitted }

// IsCancelled reports whether the document has been reversed.
func (s DocStatus) IsCancelled() bool { return s == Cancelled }

// Submit transitions Draft to Submitted.
func (s DocStatus) Submit() (DocStatus, error) {
	if s != Draft {
		return s, fmt.Errorf("%w: cannot submit a %s document", ErrNotDraft, s)
	}
	return Submitted, nil
}

// Cancel transitions Submitted to Cancelled.
func (s DocStatus) Cancel() (DocStatus, error) {
	if s != Submitted {
		return s, fmt.Errorf("%w: cannot cancel a %s document", ErrNotSubmitted, s)
	}
	return Cancelled, nil
}

// RequireDraft returns ErrNotDraft unless the document is a draft.
func (s DocStatus) RequireDraft() error {
	if s != Draft {
		return fmt.Errorf("%w: document is %s", ErrNotDraft, s)
	}
	return nil
}

// RequireSubmitted returns ErrNotSubmitted unless the document is submitted.
func (s DocStatus) RequireSubmitted() error {
	if s != Submitted {
		return fmt.Errorf("%w: document is %s", ErrNotSubmitted, s)
	}
	return nil
}
