// Package errors provides structured error handling for the publishing
// server. It defines error types with codes, messages, causes, and
// contextual information shared across the application layers.
package errors

import (
	"fmt"
	"log/slog"
)

// ErrorCode represents a categorized error type for structured error handling.
type ErrorCode string

const (
	ErrCodeDatabase     ErrorCode = "DATABASE_ERROR"
	ErrCodeValidation   ErrorCode = "VALIDATION_ERROR"
	ErrCodeNotFound     ErrorCode = "NOT_FOUND_ERROR"
	ErrCodeConflict     ErrorCode = "CONFLICT_ERROR"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED_ERROR"
	ErrCodeRateLimit    ErrorCode = "RATE_LIMIT_ERROR"
	ErrCodeUnknown      ErrorCode = "UNKNOWN_ERROR"
)

// AppError represents a structured application error with code, message,
// cause, and context. It implements the error interface and supports
// error unwrapping.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// DatabaseError creates an AppError for database-related errors.
func DatabaseError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeDatabase,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// ValidationError creates an AppError for input validation failures.
func ValidationError(message string, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Context: context,
	}
}

// NotFoundError creates an AppError for missing records.
func NotFoundError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// ConflictError creates an AppError for uniqueness violations such as a
// slug that is already taken.
func ConflictError(message string, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeConflict,
		Message: message,
		Context: context,
	}
}

// UnauthorizedError creates an AppError for failed authentication.
func UnauthorizedError(message string, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Context: context,
	}
}

// RateLimitError creates an AppError for rate limiting violations.
func RateLimitError(message string, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeRateLimit,
		Message: message,
		Context: context,
	}
}

// UnknownError creates an AppError for unclassified errors.
func UnknownError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeUnknown,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// LogError logs an AppError with structured logging and context.
func LogError(logger *slog.Logger, err error, operation string) {
	if logger == nil {
		return
	}

	if appErr, ok := err.(*AppError); ok {
		args := []interface{}{
			"operation", operation,
			"error_code", string(appErr.Code),
			"error_message", appErr.Message,
		}

		if appErr.Context != nil {
			for key, value := range appErr.Context {
				args = append(args, key, value)
			}
		}

		if appErr.Cause != nil {
			args = append(args, "cause", appErr.Cause.Error())
		}

		logger.Error("application error", args...)
		return
	}

	logger.Error("unexpected error", "operation", operation, "error", err)
}
