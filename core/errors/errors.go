package errors

import "fmt"

// ErrorCode identifies an application-level error category.
type ErrorCode string

const (
	ErrInvalidInput         ErrorCode = "INVALID_INPUT"
	ErrInvalidRequestData   ErrorCode = "INVALID_REQUEST_DATA"
	ErrNotFound             ErrorCode = "NOT_FOUND"
	ErrAlreadyExists        ErrorCode = "ALREADY_EXISTS"
	ErrConflict             ErrorCode = "CONFLICT"
	ErrConfirmationRequired ErrorCode = "CONFIRMATION_REQUIRED"
	ErrStorageUnavailable   ErrorCode = "STORAGE_UNAVAILABLE"
	ErrInternalServer       ErrorCode = "INTERNAL_SERVER_ERROR"
)

// AppError carries an error code, a user-facing message, optional details for
// the response payload and the underlying cause.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details any       `json:"details,omitempty"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithDetails attaches a details payload to the error and returns it.
func (e *AppError) WithDetails(details any) *AppError {
	e.Details = details
	return e
}
