// Package goal contains savings goal use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budgetlens/backend/internal/application/adapter"
	"github.com/budgetlens/backend/internal/application/usecase/report"
	"github.com/budgetlens/backend/internal/domain/entity"
	domainerror "github.com/budgetlens/backend/internal/domain/error"
)

// GetGoalInput represents the input for fetching a single goal.
type GetGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// GetGoalOutput represents the output of fetching a goal.
type GetGoalOutput struct {
	Goal *GoalView
}

// GetGoalUseCase handles fetching a single goal.
type GetGoalUseCase struct {
	goalRepo adapter.GoalRepository
	now      func() time.Time
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.GoalRepository) *GetGoalUseCase {
	return &GetGoalUseCase{
		goalRepo: goalRepo,
		now:      time.Now,
	}
}

// Execute fetches the goal with its progress.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.UserID, input.GoalID)
	if err != nil {
		return nil, err
	}

	return &GetGoalOutput{Goal: &GoalView{
		Goal:     goal,
		Progress: report.GoalProgress(goal, uc.now()),
	}}, nil
}

// findOwnedGoal loads a goal and checks ownership. Shared by the goal use cases.
func findOwnedGoal(ctx context.Context, repo adapter.GoalRepository, userID, goalID uuid.UUID) (*entity.Goal, error) {
	goal, err := repo.FindByID(ctx, goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}
	if goal == nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}
	if goal.UserID != userID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoal,
			"unauthorized access to goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}
	return goal, nil
}
