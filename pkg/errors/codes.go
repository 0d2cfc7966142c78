// Package errors provides error code constants for battlecard.
// Error codes are organized by category for consistent handling and lookup.
package errors

// -----------------------------------------------------------------------------
// Configuration Error Codes
// -----------------------------------------------------------------------------

const (
	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = "CONFIG_NOT_FOUND"

	// ErrConfigParseFailed indicates the configuration file could not be parsed.
	ErrConfigParseFailed = "CONFIG_PARSE_FAILED"

	// ErrConfigInvalid indicates configuration values are invalid.
	ErrConfigInvalid = "CONFIG_INVALID"

	// ErrConfigWriteFailed indicates the config file could not be written.
	ErrConfigWriteFailed = "CONFIG_WRITE_FAILED"
)

// -----------------------------------------------------------------------------
// Generation Service Error Codes
// -----------------------------------------------------------------------------

const (
	// ErrServiceUnavailable indicates the generation service is unreachable.
	ErrServiceUnavailable = "SERVICE_UNAVAILABLE"

	// ErrServiceTimeout indicates a service request timed out.
	ErrServiceTimeout = "SERVICE_TIMEOUT"

	// ErrServiceAPIError indicates the service returned an error response.
	ErrServiceAPIError = "SERVICE_API_ERROR"

	// ErrServiceBadResponse indicates the service response could not be parsed.
	ErrServiceBadResponse = "SERVICE_BAD_RESPONSE"

	// ErrGenerationFailed indicates battle card generation failed.
	ErrGenerationFailed = "GENERATION_FAILED"
)

// -----------------------------------------------------------------------------
// Analysis Error Codes
// -----------------------------------------------------------------------------

const (
	// ErrAnalysisFailed indicates a single competitor analysis failed.
	ErrAnalysisFailed = "ANALYSIS_FAILED"

	// ErrNoCompetitorsAnalyzed indicates every competitor in the batch failed.
	// This is fatal to the batch; individual failures are only warnings.
	ErrNoCompetitorsAnalyzed = "NO_COMPETITORS_ANALYZED"

	// ErrDocumentProcessing indicates a supporting document failed to process.
	ErrDocumentProcessing = "DOCUMENT_PROCESSING_FAILED"
)

// -----------------------------------------------------------------------------
// Export Error Codes
// -----------------------------------------------------------------------------

const (
	// ErrExportFailed indicates document export failed. No partial document
	// is produced when this is returned.
	ErrExportFailed = "EXPORT_FAILED"

	// ErrExportWriteFailed indicates the exported file could not be written.
	ErrExportWriteFailed = "EXPORT_WRITE_FAILED"
)

// -----------------------------------------------------------------------------
// Validation Error Codes
// -----------------------------------------------------------------------------

const (
	// ErrInvalidURL indicates a competitor URL failed validation.
	ErrInvalidURL = "INVALID_URL"

	// ErrNoCompetitors indicates the wizard was submitted without competitors.
	ErrNoCompetitors = "NO_COMPETITORS"

	// ErrInvalidSelection indicates a wizard choice was out of range.
	ErrInvalidSelection = "INVALID_SELECTION"
)
