package errors

import (
	"net/http"

	"bazaar/internal/errors"
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
	// Listing-related errors
	ErrListingNotFound = NewBaseError(
		http.StatusNotFound,
		"LISTING_NOT_FOUND",
		"找不到該商品",
		"",
	)

	ErrDuplicateListingName = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_LISTING_NAME",
		"此賣家已有同名商品",
		"",
	)

	ErrStaleListing = NewBaseError(
		http.StatusConflict,
		"STALE_LISTING",
		"商品已被其他操作更新，請重試",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_STATUS_TRANSITION",
		"不允許的商品狀態轉換",
		"",
	)

	ErrListingCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"LISTING_CREATION_FAILED",
		"建立商品失敗",
		"",
	)

	ErrListingUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"LISTING_UPDATE_FAILED",
		"更新商品失敗",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"找不到該使用者",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"找不到該使用者的個人檔案",
		"",
	)

	// Address-related errors
	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"找不到該地址",
		"",
	)

	ErrAddressKindConflict = NewBaseError(
		http.StatusConflict,
		"ADDRESS_KIND_CONFLICT",
		"該使用者已設定此類型的地址",
		"",
	)

	// Engagement-related errors
	ErrEngagementNotFound = NewBaseError(
		http.StatusNotFound,
		"ENGAGEMENT_NOT_FOUND",
		"找不到該互動紀錄",
		"",
	)

	ErrWatchlistNotFound = NewBaseError(
		http.StatusNotFound,
		"WATCHLIST_NOT_FOUND",
		"找不到該收藏清單",
		"",
	)

	// Side-effect errors; reported, never fatal to the primary transaction
	ErrGeocodingUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"GEOCODING_UNAVAILABLE",
		"地理編碼服務暫時無法使用",
		"",
	)

	ErrSearchSyncFailed = NewBaseError(
		http.StatusServiceUnavailable,
		"SEARCH_SYNC_FAILED",
		"搜尋索引同步失敗",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"資料庫交易失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"資源衝突",
		"",
	)
)

// ValidationError reports a single listing field that failed an invariant,
// implementing the AppError interface. The field and reason survive to the
// caller so the violation can be surfaced precisely.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a validation error for a specific field
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{
		Field:  field,
		Reason: reason,
	}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "輸入資料驗證失敗"
}

// Details returns detailed error information
func (e *ValidationError) Details() string {
	return e.Error()
}

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
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
