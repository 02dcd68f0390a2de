package errors

import "fmt"

// Error codes
const (
	ErrCodeConfig = "CONFIG_ERROR"
	ErrCodeInput  = "INPUT_ERROR"
	ErrCodeOutput = "OUTPUT_ERROR"
	ErrCodeDB     = "DB_ERROR"
)

// AppError classifies a fatal run failure with a stable code.
type AppError struct {
	Code    string // Error code (e.g., "INPUT_ERROR")
	Message string // Human-readable error message
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new CONFIG_ERROR
func NewConfigError(message string) *AppError {
	return &AppError{Code: ErrCodeConfig, Message: message}
}

// NewInputError creates a new INPUT_ERROR wrapping the cause
func NewInputError(path string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeInput,
		Message: fmt.Sprintf("cannot read input %s", path),
		Err:     err,
	}
}

// NewOutputError creates a new OUTPUT_ERROR wrapping the cause
func NewOutputError(path string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeOutput,
		Message: fmt.Sprintf("cannot write %s", path),
		Err:     err,
	}
}

// NewDBError creates a new DB_ERROR wrapping the cause
func NewDBError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeDB,
		Message: "manifest operation failed",
		Err:     err,
	}
}
