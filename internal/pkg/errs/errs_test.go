package errs_test

import (
	"errors"
	"testing"

	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("productId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("mobile")

		assert.Equal(t, "mobile", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: mobile", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("mobile", cause)

		assert.Equal(t, "mobile", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: mobile (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("qty", 150, 0, 120)

		assert.Equal(t, "qty", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 120, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is qty, min value is 0, max value is 120", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("quantity", -5, 0, 100, cause)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is quantity, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
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
		err := errs.NewValueIsRequiredError("customerName")

		assert.Equal(t, "customerName", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: customerName", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("customerName", cause)

		assert.Equal(t, "customerName", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: customerName (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	t.Run("NewVersionIsInvalidError", func(t *testing.T) {
		err := errs.NewVersionIsInvalidError("version")

		assert.Equal(t, "version", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "version is invalid: version", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})

	t.Run("NewVersionIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("stale version")
		err := errs.NewVersionIsInvalidErrorWithCause("version", cause)

		assert.Equal(t, "version", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "version is invalid: version (cause: stale version)", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})
}

func TestConcurrentUpdateError(t *testing.T) {
	t.Run("NewConcurrentUpdateError", func(t *testing.T) {
		err := errs.NewConcurrentUpdateError("order", "abc")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "abc", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "concurrent update conflict: abc", err.Error())
		assert.Equal(t, errs.ErrConcurrentUpdate, err.Unwrap())
	})

	t.Run("NewConcurrentUpdateErrorWithCause", func(t *testing.T) {
		cause := errors.New("version check failed")
		err := errs.NewConcurrentUpdateErrorWithCause("order", "abc", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"concurrent update conflict: param is: order, ID is: abc (cause: version check failed)",
			err.Error())
	})
}

func TestStateMismatchError(t *testing.T) {
	t.Run("NewStateMismatchError", func(t *testing.T) {
		err := errs.NewStateMismatchError("sku")

		assert.Equal(t, "sku", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "state mismatch: sku", err.Error())
		assert.Equal(t, errs.ErrStateMismatch, err.Unwrap())
	})

	t.Run("NewStateMismatchErrorWithCause", func(t *testing.T) {
		cause := errors.New("type/sku mismatch")
		err := errs.NewStateMismatchErrorWithCause("sku", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "state mismatch: sku (cause: type/sku mismatch)", err.Error())
	})
}

func TestInsufficientStockError(t *testing.T) {
	t.Run("NewInsufficientStockError", func(t *testing.T) {
		err := errs.NewInsufficientStockError("quantity")

		assert.Equal(t, "quantity", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "insufficient stock: quantity", err.Error())
		assert.Equal(t, errs.ErrInsufficientStock, err.Unwrap())
	})

	t.Run("NewInsufficientStockErrorWithCause", func(t *testing.T) {
		cause := errors.New("stock for sku A1 would drop to -1")
		err := errs.NewInsufficientStockErrorWithCause("quantity", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"insufficient stock: quantity (cause: stock for sku A1 would drop to -1)",
			err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrVersionIsInvalid)
		require.Error(t, errs.ErrConcurrentUpdate)
		require.Error(t, errs.ErrStateMismatch)
		require.Error(t, errs.ErrInsufficientStock)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
		assert.Equal(t, "concurrent update conflict", errs.ErrConcurrentUpdate.Error())
		assert.Equal(t, "state mismatch", errs.ErrStateMismatch.Error())
		assert.Equal(t, "insufficient stock", errs.ErrInsufficientStock.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("orderId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("mobile")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("qty", 150, 0, 120)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("customerName")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		versionInvalidErr := errs.NewVersionIsInvalidErrorWithCause("version", errors.New("test"))
		require.ErrorIs(t, versionInvalidErr, errs.ErrVersionIsInvalid)

		concurrentErr := errs.NewConcurrentUpdateError("order", "abc")
		require.ErrorIs(t, concurrentErr, errs.ErrConcurrentUpdate)

		stateMismatchErr := errs.NewStateMismatchError("sku")
		require.ErrorIs(t, stateMismatchErr, errs.ErrStateMismatch)

		insufficientStockErr := errs.NewInsufficientStockError("quantity")
		require.ErrorIs(t, insufficientStockErr, errs.ErrInsufficientStock)
	})
}
