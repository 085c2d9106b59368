// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetlens/backend/internal/application/adapter"
	"github.com/budgetlens/backend/internal/application/usecase/report"
	"github.com/budgetlens/backend/internal/domain/entity"
	domainerror "github.com/budgetlens/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for budget update.
// Only the amount is mutable; category and month identify the budget.
type UpdateBudgetInput struct {
	UserID   uuid.UUID
	BudgetID uuid.UUID
	Amount   decimal.Decimal
}

// UpdateBudgetOutput represents the output of budget update: the updated
// budget with its progress recomputed against the new amount.
type UpdateBudgetOutput struct {
	View *BudgetView
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo      adapter.BudgetRepository
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo:      budgetRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the budget update and recomputes the budget's progress for
// its month, since the percentage and status shift with the new amount.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"amount must be greater than 0",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}
	if budget == nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}
	if budget.UserID != input.UserID {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeUnauthorizedBudget,
			"unauthorized access to budget",
			domainerror.ErrUnauthorizedBudgetAccess,
		)
	}

	budget.Amount = input.Amount
	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	view, err := uc.buildView(ctx, budget)
	if err != nil {
		return nil, err
	}
	return &UpdateBudgetOutput{View: view}, nil
}

// buildView derives the spent amount and status for the budget's month, the
// same way the listing does. A dangling category degrades to the Unknown
// label instead of failing the update.
func (uc *UpdateBudgetUseCase) buildView(ctx context.Context, budget *entity.Budget) (*BudgetView, error) {
	start, end, err := report.MonthBounds(budget.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve budget month: %w", err)
	}

	transactions, err := uc.transactionRepo.FindByUserAndDateRange(ctx, budget.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for budget: %w", err)
	}

	spent := decimal.Zero
	for _, tx := range transactions {
		if tx.Transaction.Type != entity.TransactionTypeExpense || tx.Transaction.CategoryID == nil {
			continue
		}
		if *tx.Transaction.CategoryID == budget.CategoryID {
			spent = spent.Add(tx.Transaction.Amount)
		}
	}

	percentage, status := report.BudgetProgress(budget.Amount, spent)
	rounded, _ := percentage.Round(2).Float64()

	view := &BudgetView{
		Budget:        budget,
		CategoryName:  UnknownCategoryName,
		CategoryColor: UnknownCategoryColor,
		Spent:         spent,
		Percentage:    rounded,
		Status:        status,
	}
	category, err := uc.categoryRepo.FindByID(ctx, budget.CategoryID)
	if err == nil && category != nil {
		view.CategoryName = category.Name
		view.CategoryColor = category.Color
	}
	return view, nil
}
