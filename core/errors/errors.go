package errors

import "fmt"

// ErrorCode identifies a class of application error. Codes are stable and
// returned to clients inside the error response body.
type ErrorCode string

const (
	ErrInvalidRequestData ErrorCode = "INVALID_REQUEST_DATA"
	ErrInvalidInput       ErrorCode = "INVALID_INPUT"
	ErrUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrForbidden          ErrorCode = "FORBIDDEN"
	ErrNotFound           ErrorCode = "NOT_FOUND"
	ErrAlreadyExists      ErrorCode = "ALREADY_EXISTS"
	ErrConflict           ErrorCode = "CONFLICT"
	ErrInternalServer     ErrorCode = "INTERNAL_SERVER_ERROR"
)

// AppError is the error type services return to controllers. Code selects the
// HTTP mapping, Message is safe to show the user, Err carries the cause.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
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
