package errs_test

import (
	"errors"
	"testing"

	"farmaya/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("pedidoId", "123")

		assert.Equal(t, "pedidoId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("pedidoId", "123", cause)

		assert.Equal(t, "pedidoId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: pedidoId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("cantidad", 0, 1, 999)

		assert.Equal(t, "cantidad", err.ParamName)
		assert.Equal(t, 0, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 999, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 0 is cantidad, min value is 1, max value is 999", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("direccion_entrega")

		assert.Equal(t, "direccion_entrega", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: direccion_entrega", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("direccion_entrega", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: direccion_entrega (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestNotAllowedError(t *testing.T) {
	t.Run("NewNotAllowedError", func(t *testing.T) {
		err := errs.NewNotAllowedError("update order status")

		assert.Equal(t, "update order status", err.Action)
		require.NoError(t, err.Cause)
		assert.Equal(t, "action is not allowed: update order status", err.Error())
		assert.Equal(t, errs.ErrActionNotAllowed, err.Unwrap())
	})

	t.Run("NewNotAllowedErrorWithCause", func(t *testing.T) {
		cause := errors.New("actor is not the order's pharmacy")
		err := errs.NewNotAllowedErrorWithCause("accept order", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"action is not allowed: accept order (cause: actor is not the order's pharmacy)",
			err.Error())
	})
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("order already claimed")

		assert.Equal(t, "order already claimed", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "conflict: order already claimed", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicate key value violates unique constraint")
		err := errs.NewConflictErrorWithCause("rejection already recorded", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"conflict: rejection already recorded (cause: duplicate key value violates unique constraint)",
			err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "action is not allowed", errs.ErrActionNotAllowed.Error())
		assert.Equal(t, "conflict", errs.ErrConflict.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("pedidoId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("email"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("cantidad", 0, 1, 999), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("direccion"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewNotAllowedError("claim order"), errs.ErrActionNotAllowed)
		require.ErrorIs(t, errs.NewConflictError("claim"), errs.ErrConflict)
	})
}
