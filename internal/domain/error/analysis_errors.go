// Package error defines domain-specific errors for the cash-flow tracker.
package error

import "errors"

// Analysis and report domain errors.
var (
	// ErrMissingStartDate is returned when the analysis start date is not provided.
	ErrMissingStartDate = errors.New("start date is required")

	// ErrMissingEndDate is returned when the analysis end date is not provided.
	ErrMissingEndDate = errors.New("end date is required")

	// ErrInvalidDateRange is returned when the start date is after the end date.
	ErrInvalidDateRange = errors.New("start date must not be after end date")

	// ErrInvalidAnalysisKind is returned when the analysis kind is not supported.
	ErrInvalidAnalysisKind = errors.New("analysis type must be: category, account, or period")

	// ErrInvalidPeriodKind is returned when the period granularity is not supported.
	ErrInvalidPeriodKind = errors.New("period must be: daily, weekly, monthly, or yearly")

	// ErrMissingReportDate is returned when a daily report is requested without a date.
	ErrMissingReportDate = errors.New("report date is required")

	// ErrInvalidReportTarget is returned when the report target is not supported.
	ErrInvalidReportTarget = errors.New("report target must be: printable or text")
)

// AnalysisErrorCode defines error codes for analysis and report errors.
// Format: ANL-XXYYYY where XX is category and YYYY is specific error.
type AnalysisErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingStartDate    AnalysisErrorCode = "ANL-010001"
	ErrCodeMissingEndDate      AnalysisErrorCode = "ANL-010002"
	ErrCodeInvalidDateRange    AnalysisErrorCode = "ANL-010003"
	ErrCodeInvalidAnalysisKind AnalysisErrorCode = "ANL-010004"
	ErrCodeInvalidPeriodKind   AnalysisErrorCode = "ANL-010005"
	ErrCodeMissingReportDate   AnalysisErrorCode = "ANL-010006"
	ErrCodeInvalidReportTarget AnalysisErrorCode = "ANL-010007"

	// Internal errors (99XXXX)
	ErrCodeAnalysisInternalError AnalysisErrorCode = "ANL-990001"
)

// AnalysisError represents an analysis error with code and message.
type AnalysisError struct {
	Code    AnalysisErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnalysisError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError creates a new AnalysisError with the given code and message.
func NewAnalysisError(code AnalysisErrorCode, message string, err error) *AnalysisError {
	return &AnalysisError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
