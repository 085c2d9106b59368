// Package error defines domain-specific errors for the BudgetLens application.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidMonthFormat is returned when a month parameter is not in YYYY-MM format.
	ErrInvalidMonthFormat = errors.New("invalid month format, expected YYYY-MM")

	// ErrMissingMonth is returned when a required month parameter is not provided.
	ErrMissingMonth = errors.New("month is required")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonthFormat ReportErrorCode = "RPT-010001"
	ErrCodeMissingMonth       ReportErrorCode = "RPT-010002"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
