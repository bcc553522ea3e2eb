package apperror

import "net/http"

// AppError is the domain-to-HTTP error taxonomy. Handlers attach one via
// c.Error and the error middleware maps Code/Message onto the response.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// BadRequest covers malformed or missing input (ValidationError).
func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Unauthorized covers missing, invalid, or expired credentials (AuthError).
func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

// Forbidden covers authenticated but not permitted.
func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, message, nil)
}

// NotFound covers absent resources.
func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

// Conflict covers duplicate unique keys (ConflictError).
func Conflict(message string) *AppError {
	return New(http.StatusConflict, message, nil)
}

// Internal wraps unexpected failures; the cause is logged server-side.
func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Something went wrong!", err)
}
