// Package errors provides structured error types for battlecard.
// Errors include context, causes, and actionable suggestions.
package errors

import (
	"fmt"
	"strings"
)

// Category classifies errors for consistent handling and display.
type Category string

const (
	CategoryConfig     Category = "config"     // Configuration loading/parsing errors
	CategoryService    Category = "service"    // Generation service communication errors
	CategoryAnalysis   Category = "analysis"   // Competitor/document analysis errors
	CategoryExport     Category = "export"     // Document export errors
	CategoryValidation Category = "validation" // Wizard input validation errors
	CategoryIO         Category = "io"         // File/IO errors
	CategoryInternal   Category = "internal"   // Internal/unexpected errors
)

// CardError is a structured error with context and suggestions.
// It implements the error interface and supports error wrapping.
type CardError struct {
	// Code is a unique identifier for this error type (e.g., "SERVICE_UNAVAILABLE")
	Code string

	// Category classifies this error for consistent handling
	Category Category

	// Message is the primary error message describing what went wrong
	Message string

	// Context provides additional key-value details about the error
	Context map[string]string

	// Cause is the underlying error that triggered this error (for wrapping)
	Cause error

	// Suggestions are actionable remediation steps for the user
	Suggestions []string
}

// Error implements the error interface.
func (e *CardError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain inspection.
func (e *CardError) Unwrap() error {
	return e.Cause
}

// Is reports whether e matches target for errors.Is() checks.
// Two CardErrors match if they have the same Code.
func (e *CardError) Is(target error) bool {
	if t, ok := target.(*CardError); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new CardError with the given code, category, and message.
func New(code string, category Category, message string) *CardError {
	return &CardError{
		Code:     code,
		Category: category,
		Message:  message,
		Context:  make(map[string]string),
	}
}

// Wrap wraps an existing error with a CardError.
func Wrap(err error, code string, category Category, message string) *CardError {
	return New(code, category, message).WithCause(err)
}

// WithContext adds a context key-value pair and returns the error for chaining.
func (e *CardError) WithContext(key, value string) *CardError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// WithCause wraps an underlying error and returns the error for chaining.
func (e *CardError) WithCause(cause error) *CardError {
	e.Cause = cause
	return e
}

// WithSuggestion adds a remediation suggestion and returns the error for chaining.
func (e *CardError) WithSuggestion(suggestion string) *CardError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple remediation suggestions.
func (e *CardError) WithSuggestions(suggestions ...string) *CardError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// HasSuggestions returns true if the error has suggestions.
func (e *CardError) HasSuggestions() bool {
	return len(e.Suggestions) > 0
}

// ContextString returns a formatted string of all context entries.
func (e *CardError) ContextString() string {
	if len(e.Context) == 0 {
		return ""
	}
	var parts []string
	for k, v := range e.Context {
		parts = append(parts, fmt.Sprintf("%s=%q", k, v))
	}
	return strings.Join(parts, ", ")
}

// AsCardError attempts to convert an error to a CardError.
func AsCardError(err error) (*CardError, bool) {
	if err == nil {
		return nil, false
	}
	if ce, ok := err.(*CardError); ok {
		return ce, true
	}
	return nil, false
}

// IsCategory checks if an error is a CardError with the given category.
func IsCategory(err error, category Category) bool {
	if ce, ok := AsCardError(err); ok {
		return ce.Category == category
	}
	return false
}

// IsCode checks if an error is a CardError with the given code.
func IsCode(err error, code string) bool {
	if ce, ok := AsCardError(err); ok {
		return ce.Code == code
	}
	return false
}
