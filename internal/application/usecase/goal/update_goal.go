// Package goal contains savings goal use cases.
package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetlens/backend/internal/application/adapter"
	"github.com/budgetlens/backend/internal/domain/entity"
	domainerror "github.com/budgetlens/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update.
// Nil fields are left unchanged; ClearDeadline removes the deadline.
type UpdateGoalInput struct {
	UserID        uuid.UUID
	GoalID        uuid.UUID
	Name          *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	Category      *string
	Deadline      *time.Time
	ClearDeadline bool
	Color         *string
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs a partial goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	if input.Name == nil && input.TargetAmount == nil && input.CurrentAmount == nil &&
		input.Category == nil && input.Deadline == nil && !input.ClearDeadline && input.Color == nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeNoGoalFieldsToUpdate,
			"no fields to update",
			domainerror.ErrNoGoalFieldsToUpdate,
		)
	}

	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.UserID, input.GoalID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeMissingGoalName,
				"goal name is required",
				domainerror.ErrMissingGoalName,
			)
		}
		goal.Name = name
	}
	if input.TargetAmount != nil {
		if !input.TargetAmount.IsPositive() {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidTargetAmount,
				"target amount must be greater than 0",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		goal.TargetAmount = *input.TargetAmount
	}
	if input.CurrentAmount != nil {
		if input.CurrentAmount.IsNegative() {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeNegativeCurrentAmount,
				"current amount cannot be negative",
				domainerror.ErrNegativeCurrentAmount,
			)
		}
		goal.CurrentAmount = *input.CurrentAmount
	}
	if input.Category != nil {
		goal.Category = *input.Category
	}
	if input.ClearDeadline {
		goal.Deadline = nil
	} else if input.Deadline != nil {
		goal.Deadline = input.Deadline
	}
	if input.Color != nil {
		goal.Color = *input.Color
	}

	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{Goal: goal}, nil
}
