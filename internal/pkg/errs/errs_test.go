package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"booksamples/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("distribution", "d-42")

		assert.Equal(t, "distribution", err.ParamName)
		assert.Equal(t, "d-42", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: d-42", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("vehicle", "KA-01", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: vehicle, ID is: KA-01 (cause: connection reset)",
			err.Error())
	})

	t.Run("non string id", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("class grade", 7)
		assert.Equal(t, "object not found: %!s(int=7)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("warehouse")

		assert.Equal(t, "warehouse", err.ParamName)
		assert.Equal(t, "value is invalid: warehouse", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("qty", errors.New("must be positive"))

		assert.Equal(t, "value is invalid: qty (cause: must be positive)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("qty collected", 60, 0, 50)

		assert.Equal(t, 60, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 50, err.Max)
		assert.Equal(t, "value is invalid: 60 is qty collected, min value is 0, max value is 50", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("qty", -5, 0, 100, errors.New("reversal"))

		assert.Equal(t,
			"value is invalid: -5 is qty, min value is 0, max value is 100 (cause: reversal)",
			err.Error())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("school")

		assert.Equal(t, "value is required: school", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsRequiredErrorWithCause("target warehouse", errors.New("vehicle has none"))

		assert.Equal(t, "value is required: target warehouse (cause: vehicle has none)", err.Error())
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewVersionIsInvalidError("distribution")

		require.NoError(t, err.Cause)
		assert.Equal(t, "version is invalid: distribution", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewVersionIsInvalidErrorWithCause("distribution", errors.New("expected 3"))

		assert.Equal(t, "version is invalid: distribution (cause: expected 3)", err.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	wrapped := fmt.Errorf("submit collection: %w", errs.NewObjectNotFoundError("distribution", "x"))
	require.ErrorIs(t, wrapped, errs.ErrObjectNotFound)

	require.ErrorIs(t, errs.NewValueIsInvalidError("a"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("a", 1, 2, 3), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("a"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewVersionIsInvalidError("a"), errs.ErrVersionIsInvalid)

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, wrapped, &notFound)
	assert.Equal(t, "distribution", notFound.ParamName)
}
