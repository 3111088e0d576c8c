package svcerrors

import (
	"errors"
	"fmt"
)

const (
	categoryInvalidArgument = "invalid_argument"
	categoryInvalidInput    = "invalid_input"
	categoryInternal        = "internal"
)

// Process exit codes.
const (
	ExitOK              = 0
	ExitFailure         = 1
	ExitInvalidArgument = 2
)

const (
	errorCodeInternalUndefined = "SYS_9001"
)

// NewInvalidArgumentError creates a new ServiceError with category invalid_argument.
// It is reserved for command-line argument problems.
func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInvalidArgument,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: ExitInvalidArgument,
	}
}

// NewInvalidInputError creates a new ServiceError with category invalid_input.
// Used when the content of an input file cannot be processed.
func NewInvalidInputError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInvalidInput,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: ExitFailure,
	}
}

// NewInternalError creates a new ServiceError with category internal.
func NewInternalError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInternal,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: ExitFailure,
	}
}

// NewInternalErrorUndefined wraps an error that carries no service code.
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, "unexpected failure", cause)
}

func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// ExitCode maps err to a process exit code. Errors without a ServiceError in
// their chain are treated as failures.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if svcErr, ok := AsServiceError(err); ok {
		return svcErr.ExitCode
	}
	return ExitFailure
}

// ServiceError represents a service-level error with category, code, message, and cause.
// It implements the error interface and supports error wrapping.
type ServiceError struct {
	Category string // invalid_argument, invalid_input or internal
	Code     string // service-owned stable code (e.g. BAT_1000)
	Message  string // human-readable, names the offending file or value
	Cause    error  // wrapped underlying error
	ExitCode int    // process exit code
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}

func (e *ServiceError) IsInvalidArgument() bool {
	return e.Category == categoryInvalidArgument
}
