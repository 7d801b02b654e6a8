package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// ErrCodeConfiguration covers unknown engine identifiers and missing
	// required connection parameters, detected before any driver is touched.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"

	// ErrCodeConnection covers handshake, authentication, network, and
	// missing-file failures while establishing a driver connection.
	ErrCodeConnection ErrorCode = "CONNECTION_ERROR"

	// ErrCodeQuery covers syntax and driver-reported failures during
	// statement execution or tabular reads.
	ErrCodeQuery ErrorCode = "QUERY_ERROR"
)

// AppError represents an application error with code and context
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
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

// WrapError wraps an existing error with an error code and message
func WrapError(code ErrorCode, message string, err error) *AppError {
	return NewAppError(code, message, err)
}

// Configurationf creates a configuration error from a format string
func Configurationf(format string, args ...any) *AppError {
	return NewAppError(ErrCodeConfiguration, fmt.Sprintf(format, args...), nil)
}

// IsConfiguration checks if the error carries the configuration error code
func IsConfiguration(err error) bool {
	return hasCode(err, ErrCodeConfiguration)
}

// IsConnection checks if the error carries the connection error code
func IsConnection(err error) bool {
	return hasCode(err, ErrCodeConnection)
}

// IsQuery checks if the error carries the query error code
func IsQuery(err error) bool {
	return hasCode(err, ErrCodeQuery)
}

func hasCode(err error, code ErrorCode) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
