package kernel_test

import (
	"testing"
	"time"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocStatus_Validate(t *testing.T) {
	for _, s := range []kernel.DocStatus{kernel.Draft, kernel.Submitted, kernel.Cancelled} {
		require.NoError(t, s.Validate(), s.String())
	}

	for _, s := range []kernel.DocStatus{kernel.DocStatusUnknown, kernel.DocStatus(42)} {
		err := s.Validate()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "Unknown", s.String())
	}
}

func TestDocStatus_Transitions(t *testing.T) {
	tests := []struct {
		name      string
		from      kernel.DocStatus
		submitErr error
		cancelErr error
	}{
		{"draft", kernel.Draft, nil, kernel.ErrNotSubmitted},
		{"submitted", kernel.Submitted, kernel.ErrNotDraft, nil},
		{"cancelled", kernel.Cancelled, kernel.ErrNotDraft, kernel.ErrNotSubmitted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			submitted, err := tt.from.Submit()
			if tt.submitErr != nil {
				require.ErrorIs(t, err, tt.submitErr)
				assert.Equal(t, tt.from, submitted)
			} else {
				require.NoError(t, err)
				assert.Equal(t, kernel.Submitted, submitted)
			}

			cancelled, err := tt.from.Cancel()
			if tt.cancelErr != nil {
				require.ErrorIs(t, err, tt.cancelErr)
				assert.Equal(t, tt.from, cancelled)
			} else {
				require.NoError(t, err)
				assert.Equal(t, kernel.Cancelled, cancelled)
			}
		})
	}
}

func TestDocStatus_Require(t *testing.T) {
	require.NoError(t, kernel.Draft.RequireDraft())
	require.ErrorIs(t, kernel.Submitted.RequireDraft(), kernel.ErrNotDraft)
	require.NoError(t, kernel.Submitted.RequireSubmitted())
	require.ErrorIs(t, kernel.Cancelled.RequireSubmitted(), kernel.ErrNotSubmitted)

	assert.True(t, kernel.Draft.IsDraft())
	assert.True(t, kernel.Submitted.IsSubmitted())
	assert.True(t, kernel.Cancelled.IsCancelled())
}

func TestDateOf(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	got := kernel.DateOf(time.Date(2024, 6, 3, 22, 15, 0, 0, ist))

	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), got)
}
