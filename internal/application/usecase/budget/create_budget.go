// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetlens/backend/internal/application/adapter"
	"github.com/budgetlens/backend/internal/application/usecase/report"
	"github.com/budgetlens/backend/internal/domain/entity"
	domainerror "github.com/budgetlens/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Month      string
}

// CreateBudgetOutput represents the output of budget creation. The category
// is the one the budget was validated against, so callers can render its
// display fields without a second lookup.
type CreateBudgetOutput struct {
	Budget   *entity.Budget
	Category *entity.Category
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the budget creation. The (user, category, month) key is
// enforced by the store's unique index; a duplicate surfaces as a conflict.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"amount must be greater than 0",
			domainerror.ErrInvalidBudgetAmount,
		)
	}
	if err := report.ValidateMonth(input.Month); err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidBudgetMonth,
		)
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if category == nil || category.UserID != input.UserID {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetCategoryNotFound,
			"category not found",
			domainerror.ErrBudgetCategoryNotFound,
		)
	}
	if category.Type != entity.CategoryTypeExpense {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetCategoryNotExpense,
			"budgets can only be set on expense categories",
			domainerror.ErrBudgetCategoryNotExpense,
		)
	}

	budget := entity.NewBudget(input.UserID, input.CategoryID, input.Amount, input.Month)

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		if errors.Is(err, domainerror.ErrBudgetAlreadyExists) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetAlreadyExists,
				"a budget for this category and month already exists",
				domainerror.ErrBudgetAlreadyExists,
			)
		}
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{Budget: budget, Category: category}, nil
}
