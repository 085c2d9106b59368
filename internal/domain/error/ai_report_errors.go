// Package error defines domain-specific errors for the BudgetLens application.
package error

import "errors"

// AI report domain errors.
var (
	// ErrAIReportNotFound is returned when a stored report is not found.
	ErrAIReportNotFound = errors.New("report not found")

	// ErrAIReportAlreadyExists is returned by the store when a report for the
	// (user, month) key already exists. Generation treats this as success-by-read-back.
	ErrAIReportAlreadyExists = errors.New("report already exists for this month")

	// ErrReportGenerationFailed is returned when the completion service fails.
	// Nothing is persisted; the caller may retry.
	ErrReportGenerationFailed = errors.New("failed to generate report")

	// ErrCompletionUnavailable is returned when the completion service is not configured.
	ErrCompletionUnavailable = errors.New("completion service is not configured")
)

// AIReportErrorCode defines error codes for AI report errors.
// Format: AIR-XXYYYY where XX is category and YYYY is specific error.
type AIReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeAIReportNotFound AIReportErrorCode = "AIR-010001"

	// Upstream errors (02XXXX)
	ErrCodeReportGenerationFailed AIReportErrorCode = "AIR-020001"
	ErrCodeCompletionUnavailable  AIReportErrorCode = "AIR-020002"

	// Conflict (03XXXX)
	ErrCodeAIReportAlreadyExists AIReportErrorCode = "AIR-030001"
)

// AIReportError represents an AI report error with code and message.
type AIReportError struct {
	Code    AIReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AIReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AIReportError) Unwrap() error {
	return e.Err
}

// NewAIReportError creates a new AIReportError with the given code and message.
func NewAIReportError(code AIReportErrorCode, message string, err error) *AIReportError {
	return &AIReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
