// Package errors provides a lightweight structured error type (CrossrefError)
// for category-based classification in the registry, store and CLI layers.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a crossref error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Document loading and parsing errors
	CategoryParse      ErrorCategory = "parse"
	CategoryFileSystem ErrorCategory = "filesystem"

	// Registry build and persistence errors
	CategoryRegistry ErrorCategory = "registry"
	CategoryStore    ErrorCategory = "store"

	// Runtime and infrastructure errors
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
	SeverityInfo    ErrorSeverity = "info"    // Informational, no impact
)

// CrossrefError is a structured error with category, severity, and context
type CrossrefError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for CrossrefError
type ContextFields map[string]any

// Error implements the error interface
func (e *CrossrefError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *CrossrefError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *CrossrefError) WithContext(key string, value any) *CrossrefError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new CrossrefError
func New(category ErrorCategory, severity ErrorSeverity, message string) *CrossrefError {
	return &CrossrefError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new CrossrefError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *CrossrefError {
	return &CrossrefError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if ce, ok := err.(*CrossrefError); ok {
		return ce.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a CrossrefError
func GetCategory(err error) ErrorCategory {
	if ce, ok := err.(*CrossrefError); ok {
		return ce.Category
	}
	return CategoryInternal
}
