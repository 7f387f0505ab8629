package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Is matches any BaseError carrying the same business code, so errors built
// with WithDetails still match their predefined error.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)

	return ok && other.errorCode == e.errorCode
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Failed to create user",
		"",
	)

	ErrUserUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_UPDATE_FAILED",
		"Failed to update user",
		"",
	)

	ErrRoleChangeNotAllowed = NewBaseError(
		http.StatusBadRequest,
		"ROLE_CHANGE_NOT_ALLOWED",
		"This role change is not allowed",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired refresh token",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing error",
		"",
	)

	ErrPasswordTooWeak = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_WEAK",
		"Password does not meet strength requirements",
		"",
	)

	// Catalog errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrProductUnavailable = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_UNAVAILABLE",
		"Product is not available for sale",
		"",
	)

	ErrInsufficientStock = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_STOCK",
		"Not enough stock for this product",
		"",
	)

	// Cart errors
	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"Item is not in the cart",
		"",
	)

	ErrCartEmpty = NewBaseError(
		http.StatusBadRequest,
		"CART_EMPTY",
		"Cart is empty",
		"",
	)

	// Discount errors
	ErrDiscountNotFound = NewBaseError(
		http.StatusNotFound,
		"DISCOUNT_NOT_FOUND",
		"Invalid discount code",
		"",
	)

	ErrDiscountInactive = NewBaseError(
		http.StatusBadRequest,
		"DISCOUNT_INACTIVE",
		"This discount code is no longer active",
		"",
	)

	ErrDiscountNotStarted = NewBaseError(
		http.StatusBadRequest,
		"DISCOUNT_NOT_STARTED",
		"This discount code is not valid yet",
		"",
	)

	ErrDiscountExpired = NewBaseError(
		http.StatusBadRequest,
		"DISCOUNT_EXPIRED",
		"This discount code has expired",
		"",
	)

	ErrDiscountUsageLimitReached = NewBaseError(
		http.StatusBadRequest,
		"DISCOUNT_USAGE_LIMIT_REACHED",
		"This discount code has reached its usage limit",
		"",
	)

	ErrDiscountMinPurchase = NewBaseError(
		http.StatusBadRequest,
		"DISCOUNT_MIN_PURCHASE",
		"Order subtotal is below the minimum for this discount",
		"",
	)

	ErrDiscountAlreadyUsed = NewBaseError(
		http.StatusBadRequest,
		"DISCOUNT_ALREADY_USED",
		"You have already used this discount code",
		"",
	)

	ErrDiscountCodeExists = NewBaseError(
		http.StatusConflict,
		"DISCOUNT_CODE_EXISTS",
		"A discount with this code already exists",
		"",
	)

	// Order errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrOrderOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"ORDER_OWNERSHIP_VIOLATION",
		"You do not have permission to access this order",
		"",
	)

	ErrOrderAlreadyPaid = NewBaseError(
		http.StatusConflict,
		"ORDER_ALREADY_PAID",
		"Order has already been paid",
		"",
	)

	ErrOrderNotPayable = NewBaseError(
		http.StatusConflict,
		"ORDER_NOT_PAYABLE",
		"Order cannot be paid in its current status",
		"",
	)

	ErrInvalidOrderTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_ORDER_TRANSITION",
		"Order cannot move to the requested status",
		"",
	)

	ErrDeliveryAddressRequired = NewBaseError(
		http.StatusBadRequest,
		"DELIVERY_ADDRESS_REQUIRED",
		"Delivery address is required",
		"",
	)

	ErrInvalidPickupCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PICKUP_CODE",
		"Invalid pickup code",
		"",
	)

	// Payment errors
	ErrPaymentNotFound = NewBaseError(
		http.StatusNotFound,
		"PAYMENT_NOT_FOUND",
		"Payment not found",
		"",
	)

	ErrPaymentProviderRejected = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_PROVIDER_REJECTED",
		"Payment provider rejected the request",
		"",
	)

	ErrPaymentProviderUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"PAYMENT_PROVIDER_UNAVAILABLE",
		"Payment provider is unavailable, please try again later",
		"",
	)

	ErrInvalidWebhookSignature = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SIGNATURE",
		"Invalid webhook signature",
		"",
	)

	ErrInvalidWebhookPayload = NewBaseError(
		http.StatusBadRequest,
		"INVALID_WEBHOOK_PAYLOAD",
		"Invalid webhook payload",
		"",
	)

	ErrPaymentAmountMismatch = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_AMOUNT_MISMATCH",
		"Paid amount does not match the order amount",
		"",
	)

	// Ad errors
	ErrAdNotFound = NewBaseError(
		http.StatusNotFound,
		"AD_NOT_FOUND",
		"Ad not found",
		"",
	)

	// Stats errors
	ErrInvalidDateRange = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DATE_RANGE",
		"Invalid date range",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
