package errors

import (
	"net/http"
	"testing"

	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentityFields(t *testing.T) {
	err := ErrPaymentProviderRejected.WithDetails("Invalid subaccount")

	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "PAYMENT_PROVIDER_REJECTED", err.ErrorCode())
	assert.Equal(t, "Invalid subaccount", err.Details())
	assert.Empty(t, ErrPaymentProviderRejected.Details())
}

func TestBaseError_WrapMessageIsDiscoverable(t *testing.T) {
	wrapped := ErrInsufficientStock.WrapMessage("decrement stock")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.True(t, errors.Is(wrapped, ErrInsufficientStock))
}

func TestDatabaseExecuteError(t *testing.T) {
	err := NewDatabaseExecuteError(errors.New("connection reset"), "insert order")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Contains(t, err.Error(), "connection reset")
}

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrDiscountExpired.WithDetails("ended yesterday")

	assert.True(t, errors.Is(detailed, ErrDiscountExpired))
	assert.True(t, errors.Is(errors.Wrap(detailed, "apply"), ErrDiscountExpired))
	assert.False(t, errors.Is(detailed, ErrDiscountNotStarted))
}
