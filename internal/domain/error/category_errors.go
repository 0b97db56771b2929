// Package error defines domain-specific errors for the cash-flow tracker.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the store.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameRequired is returned when a category is created or renamed without a name.
	ErrCategoryNameRequired = errors.New("category name is required")

	// ErrInvalidCategoryType is returned when the category type is not income or expense.
	ErrInvalidCategoryType = errors.New("category type must be 'income' or 'expense'")

	// ErrCategoryHasTransactions is returned when deleting a category that transactions still reference.
	ErrCategoryHasTransactions = errors.New("category has associated transactions")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNotFound        CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNameRequired    CategoryErrorCode = "CAT-010002"
	ErrCodeInvalidCategoryType     CategoryErrorCode = "CAT-010003"
	ErrCodeCategoryHasTransactions CategoryErrorCode = "CAT-010004"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
