// Package errors provides smart error constructors for common failure shapes.
package errors

import "fmt"

// Config creates a configuration error.
func Config(code, message string) *CardError {
	return New(code, CategoryConfig, message)
}

// Configf creates a configuration error with a formatted message.
func Configf(code, format string, args ...interface{}) *CardError {
	return Config(code, fmt.Sprintf(format, args...))
}

// Service creates a generation-service error with standard suggestions.
func Service(code, message string) *CardError {
	err := New(code, CategoryService, message)
	switch code {
	case ErrServiceUnavailable, ErrServiceTimeout:
		err.WithSuggestions(
			"Check that the card service URL in your config is correct",
			"Verify the service is reachable from this machine",
		)
	case ErrGenerationFailed:
		err.WithSuggestion("Retry generation; the wizard restarts from step one")
	}
	return err
}

// Servicef creates a service error with a formatted message.
func Servicef(code, format string, args ...interface{}) *CardError {
	return Service(code, fmt.Sprintf(format, args...))
}

// ServiceWrap wraps an error as a generation-service error.
func ServiceWrap(cause error, code, message string) *CardError {
	return Service(code, message).WithCause(cause)
}

// Analysis creates a competitor/document analysis error.
func Analysis(code, message string) *CardError {
	err := New(code, CategoryAnalysis, message)
	if code == ErrNoCompetitorsAnalyzed {
		err.WithSuggestion("Check the competitor URLs and try the batch again")
	}
	return err
}

// Analysisf creates an analysis error with a formatted message.
func Analysisf(code, format string, args ...interface{}) *CardError {
	return Analysis(code, fmt.Sprintf(format, args...))
}

// ExportFailed wraps a drawing-time failure as a generic export error.
// Callers must not produce a partial document alongside this error.
func ExportFailed(cause error) *CardError {
	return Wrap(cause, ErrExportFailed, CategoryExport, "document export failed").
		WithSuggestion("Re-run the export; if it persists, save the raw JSON and report the card")
}

// Validation creates a wizard input validation error.
func Validation(code, message string) *CardError {
	return New(code, CategoryValidation, message)
}

// Validationf creates a validation error with a formatted message.
func Validationf(code, format string, args ...interface{}) *CardError {
	return Validation(code, fmt.Sprintf(format, args...))
}

// Internal creates an internal error for unexpected conditions.
func Internal(message string) *CardError {
	return New("INTERNAL", CategoryInternal, message)
}
