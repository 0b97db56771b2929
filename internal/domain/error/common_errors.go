// Package error defines domain-specific errors for the cash-flow tracker.
package error

import "errors"

// ErrEmptyResult signals a well-formed request that matched no transactions.
// It is not a failure: callers render it as a neutral notice instead of an
// error response, and it must never produce a zero-totals report.
var ErrEmptyResult = errors.New("no transactions match the requested scope")

// CommonErrorCode defines error codes shared across modules.
// Format: COM-XXYYYY where XX is category and YYYY is specific error.
type CommonErrorCode string

const (
	ErrCodeRateLimited CommonErrorCode = "COM-010001"
)
