// Package errors provides a lightweight structured error type (SilkieError)
// for category-based classification across the generation pipeline and CLI.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a silkie error for classification
type ErrorCategory string

const (
	// User-facing input and configuration errors
	CategoryNotFound ErrorCategory = "not_found"
	CategoryConfig   ErrorCategory = "config"

	// Build and output errors
	CategoryRoute      ErrorCategory = "route"
	CategoryFileSystem ErrorCategory = "filesystem"

	// Everything else
	CategoryInternal ErrorCategory = "internal"
)

// SilkieError is a structured error with category, cause, and context
type SilkieError struct {
	Category ErrorCategory `json:"category"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for SilkieError
type ContextFields map[string]any

// Error implements the error interface
func (e *SilkieError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *SilkieError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *SilkieError) WithContext(key string, value any) *SilkieError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new SilkieError
func New(category ErrorCategory, message string) *SilkieError {
	return &SilkieError{
		Category: category,
		Message:  message,
	}
}

// Wrap creates a new SilkieError that wraps an existing error
func Wrap(err error, category ErrorCategory, message string) *SilkieError {
	return &SilkieError{
		Category: category,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if se, ok := err.(*SilkieError); ok {
		return se.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a SilkieError
func GetCategory(err error) ErrorCategory {
	if se, ok := err.(*SilkieError); ok {
		return se.Category
	}
	return CategoryInternal
}

// NotFound creates a new not-found error for a missing input or config path
func NotFound(path string) *SilkieError {
	return &SilkieError{
		Category: CategoryNotFound,
		Message:  fmt.Sprintf("no such file or directory: %s", path),
	}
}

// MalformedConfig creates a new config error for an unparsable configuration file
func MalformedConfig(err error, path string) *SilkieError {
	return &SilkieError{
		Category: CategoryConfig,
		Message:  fmt.Sprintf("malformed configuration file: %s", path),
		Cause:    err,
	}
}

// DuplicateRoute creates a new route error for a slug collision
func DuplicateRoute(slug string) *SilkieError {
	return &SilkieError{
		Category: CategoryRoute,
		Message:  fmt.Sprintf("duplicate routes found: %q is already taken by another document", slug),
	}
}
