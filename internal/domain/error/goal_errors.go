// Package error defines domain-specific errors for the BudgetLens application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidTargetAmount is returned when the target amount is zero or negative.
	ErrInvalidTargetAmount = errors.New("target amount must be greater than 0")

	// ErrNegativeCurrentAmount is returned when the current amount is negative.
	ErrNegativeCurrentAmount = errors.New("current amount cannot be negative")

	// ErrUnauthorizedGoalAccess is returned when user is not authorized to access a goal.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")

	// ErrMissingGoalName is returned when the goal name is empty.
	ErrMissingGoalName = errors.New("goal name is required")

	// ErrNoGoalFieldsToUpdate is returned when an update request contains no fields.
	ErrNoGoalFieldsToUpdate = errors.New("no fields to update")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound          GoalErrorCode = "GOL-010001"
	ErrCodeInvalidTargetAmount   GoalErrorCode = "GOL-010002"
	ErrCodeNegativeCurrentAmount GoalErrorCode = "GOL-010003"
	ErrCodeUnauthorizedGoal      GoalErrorCode = "GOL-010004"
	ErrCodeMissingGoalName       GoalErrorCode = "GOL-010005"
	ErrCodeNoGoalFieldsToUpdate  GoalErrorCode = "GOL-010006"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
