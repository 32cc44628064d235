package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// Kind classifies an AppError so callers can branch without matching messages.
type Kind string

const (
	KindAuthentication Kind = "AUTHENTICATION"
	KindAuthorization  Kind = "AUTHORIZATION"
	KindValidation     Kind = "VALIDATION"
	KindState          Kind = "STATE"
	KindNotFound       Kind = "NOT_FOUND"
	KindConflict       Kind = "CONFLICT"
	KindInternal       Kind = "INTERNAL"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Error taxonomy bucket
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
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

// Kind returns the error taxonomy bucket
func (e *BaseError) Kind() Kind {
	return e.kind
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

// WithDetails returns a copy of the error carrying detailed information.
// The copy still matches the original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches two BaseErrors by business error code so that copies made by
// WithDetails compare equal to the predefined sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Authorization gate
	ErrAuthenticationRequired = NewBaseError(
		KindAuthentication,
		http.StatusUnauthorized,
		"AUTHENTICATION_REQUIRED",
		"Authentication required",
		"",
	)

	ErrAdminOnly = NewBaseError(
		KindAuthorization,
		http.StatusForbidden,
		"ADMIN_ONLY",
		"Admin access only",
		"",
	)

	ErrInvalidIdentityToken = NewBaseError(
		KindAuthentication,
		http.StatusUnauthorized,
		"INVALID_IDENTITY_TOKEN",
		"Invalid or expired identity token",
		"",
	)

	// Domain validation
	ErrValidationFailed = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrOwnershipInvalid = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"OWNERSHIP_INVALID",
		"A post must belong to either a user or an organization, but not both",
		"",
	)

	ErrDurationInvalid = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"DURATION_INVALID",
		"Publication duration must be at least 1 day",
		"",
	)

	ErrAmountInvalid = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"AMOUNT_INVALID",
		"Payment amount cannot be negative",
		"",
	)

	ErrGeoInvalid = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"GEO_INVALID",
		"Coordinates are out of range",
		"",
	)

	// Lifecycle state
	ErrPaymentNotPending = NewBaseError(
		KindState,
		http.StatusConflict,
		"PAYMENT_NOT_PENDING",
		"This payment is not pending",
		"",
	)

	ErrPaymentNotCompleted = NewBaseError(
		KindState,
		http.StatusConflict,
		"PAYMENT_NOT_COMPLETED",
		"Only completed payments can be refunded",
		"",
	)

	ErrPostNotRenewable = NewBaseError(
		KindState,
		http.StatusConflict,
		"POST_NOT_RENEWABLE",
		"Only expired or disabled posts can be renewed",
		"",
	)

	ErrPostNotDraft = NewBaseError(
		KindState,
		http.StatusConflict,
		"POST_NOT_DRAFT",
		"Only draft posts can be published",
		"",
	)

	ErrPostAlreadyDisabled = NewBaseError(
		KindState,
		http.StatusConflict,
		"POST_ALREADY_DISABLED",
		"This post is already disabled",
		"",
	)

	ErrPostNotExpirable = NewBaseError(
		KindState,
		http.StatusConflict,
		"POST_NOT_EXPIRABLE",
		"Only published posts past their expiry can expire",
		"",
	)

	ErrPostAlreadyPublished = NewBaseError(
		KindState,
		http.StatusConflict,
		"POST_ALREADY_PUBLISHED",
		"This post is already published",
		"",
	)

	ErrLastOwner = NewBaseError(
		KindState,
		http.StatusConflict,
		"LAST_OWNER",
		"An organization must keep at least one owner",
		"",
	)

	// Lookups
	ErrUserNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrPostNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"POST_NOT_FOUND",
		"Post not found",
		"",
	)

	ErrPaymentNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"PAYMENT_NOT_FOUND",
		"Payment not found",
		"",
	)

	ErrOrganizationNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"ORGANIZATION_NOT_FOUND",
		"Organization not found",
		"",
	)

	ErrMemberNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"MEMBER_NOT_FOUND",
		"Organization member not found",
		"",
	)

	// Conflicts
	ErrConcurrentModification = NewBaseError(
		KindConflict,
		http.StatusConflict,
		"CONCURRENT_MODIFICATION",
		"The record was modified by someone else, reload and retry",
		"",
	)

	ErrMemberAlreadyExists = NewBaseError(
		KindConflict,
		http.StatusConflict,
		"MEMBER_ALREADY_EXISTS",
		"This user is already a member of the organization",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		KindConflict,
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"A user with this identity already exists",
		"",
	)

	// General errors
	ErrTransactionFailed = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
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

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns the error taxonomy bucket
func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
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

// KindOf returns the Kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}
