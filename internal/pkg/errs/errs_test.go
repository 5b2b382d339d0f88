package errs_test

import (
	"errors"
	"testing"

	"ordertrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customer_name")

		assert.Equal(t, "customer_name", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: customer_name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing field")
		err := errs.NewValueIsRequiredErrorWithCause("destination", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: destination (cause: missing field)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("not a known status")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, "value is invalid: status (cause: not a known status)", err.Error())
	})

	t.Run("sanitizes newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("status", errors.New("line1\nline2"))
		assert.NotContains(t, err.Error(), "\n")
		assert.Contains(t, err.Error(), "line1 line2")
	})
}

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order_id", "A1")

		assert.Equal(t, "order_id", err.ParamName)
		assert.Equal(t, "A1", err.ID)
		assert.Equal(t, "object not found: A1", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("row scan failed")
		err := errs.NewObjectNotFoundErrorWithCause("order_id", "A1", cause)

		assert.Equal(t,
			"object not found: param is: order_id, ID is: A1 (cause: row scan failed)",
			err.Error())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	err := errs.NewObjectAlreadyExistsError("order_id", "A1")

	assert.Equal(t, "A1", err.ID)
	assert.Equal(t, "object already exists: A1", err.Error())
	assert.Equal(t, errs.ErrObjectAlreadyExists, err.Unwrap())
}

func TestVersionConflictError(t *testing.T) {
	err := errs.NewVersionConflictError("A1", 1, 2)

	assert.Equal(t, int64(1), err.Expected)
	assert.Equal(t, int64(2), err.Actual)
	assert.Equal(t, "version conflict: A1: expected version 1, actual version 2", err.Error())
	assert.Equal(t, errs.ErrVersionConflict, err.Unwrap())
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("DELIVERED", "IN_TRANSIT")

	assert.Equal(t, "DELIVERED", err.From)
	assert.Equal(t, "IN_TRANSIT", err.To)
	assert.Equal(t, "invalid transition: DELIVERED -> IN_TRANSIT", err.Error())
	assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("order_id", "A1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewObjectAlreadyExistsError("order_id", "A1"), errs.ErrObjectAlreadyExists)
	require.ErrorIs(t, errs.NewVersionConflictError("A1", 1, 2), errs.ErrVersionConflict)
	require.ErrorIs(t, errs.NewInvalidTransitionError("DELIVERED", "CANCELLED"), errs.ErrInvalidTransition)
	require.ErrorIs(t, errs.NewValueIsRequiredError("destination"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
}
