// Package goal contains savings goal use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetlens/backend/internal/application/adapter"
	"github.com/budgetlens/backend/internal/domain/entity"
	domainerror "github.com/budgetlens/backend/internal/domain/error"
)

// AddFundsInput represents the input for adding funds to a goal.
type AddFundsInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
	Amount decimal.Decimal
}

// AddFundsOutput represents the output of adding funds.
type AddFundsOutput struct {
	Goal *entity.Goal
}

// AddFundsUseCase handles adding funds to a goal. The amount is additive, not
// a replacement of the current amount.
type AddFundsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewAddFundsUseCase creates a new AddFundsUseCase instance.
func NewAddFundsUseCase(goalRepo adapter.GoalRepository) *AddFundsUseCase {
	return &AddFundsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute adds the amount to the goal's current total.
func (uc *AddFundsUseCase) Execute(ctx context.Context, input AddFundsInput) (*AddFundsOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeNegativeCurrentAmount,
			"amount must be greater than 0",
			domainerror.ErrNegativeCurrentAmount,
		)
	}

	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.UserID, input.GoalID)
	if err != nil {
		return nil, err
	}

	goal.AddFunds(input.Amount)

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &AddFundsOutput{Goal: goal}, nil
}
