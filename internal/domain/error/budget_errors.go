// Package error defines domain-specific errors for the BudgetLens application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrBudgetAlreadyExists is returned when a budget for the category and month already exists.
	ErrBudgetAlreadyExists = errors.New("budget for this category and month already exists")

	// ErrInvalidBudgetAmount is returned when the budget amount is zero or negative.
	ErrInvalidBudgetAmount = errors.New("amount must be greater than 0")

	// ErrBudgetCategoryNotFound is returned when the referenced category is not found or not owned by the user.
	ErrBudgetCategoryNotFound = errors.New("category not found")

	// ErrBudgetCategoryNotExpense is returned when the referenced category is not an expense category.
	ErrBudgetCategoryNotExpense = errors.New("budgets can only be set on expense categories")

	// ErrInvalidBudgetMonth is returned when the month is not in YYYY-MM format.
	ErrInvalidBudgetMonth = errors.New("invalid month format, expected YYYY-MM")

	// ErrUnauthorizedBudgetAccess is returned when user is not authorized to access a budget.
	ErrUnauthorizedBudgetAccess = errors.New("unauthorized access to budget")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeBudgetNotFound           BudgetErrorCode = "BGT-010001"
	ErrCodeBudgetAlreadyExists      BudgetErrorCode = "BGT-010002"
	ErrCodeInvalidBudgetAmount      BudgetErrorCode = "BGT-010003"
	ErrCodeBudgetCategoryNotFound   BudgetErrorCode = "BGT-010004"
	ErrCodeBudgetCategoryNotExpense BudgetErrorCode = "BGT-010005"
	ErrCodeInvalidBudgetMonth       BudgetErrorCode = "BGT-010006"
	ErrCodeUnauthorizedBudget       BudgetErrorCode = "BGT-010007"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
