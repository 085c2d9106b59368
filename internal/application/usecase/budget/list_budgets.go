// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetlens/backend/internal/application/adapter"
	"github.com/budgetlens/backend/internal/application/usecase/report"
	"github.com/budgetlens/backend/internal/domain/entity"
	domainerror "github.com/budgetlens/backend/internal/domain/error"
)

// Display fallbacks for budgets whose category reference no longer resolves.
const (
	UnknownCategoryName  = "Unknown"
	UnknownCategoryColor = "#3b82f6"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	UserID uuid.UUID
	Month  string
}

// BudgetView is one budget with its derived progress figures.
type BudgetView struct {
	Budget        *entity.Budget
	CategoryName  string
	CategoryColor string
	Spent         decimal.Decimal
	Percentage    float64
	Status        string
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Month   string
	Budgets []*BudgetView
}

// ListBudgetsUseCase handles listing budgets with progress for a month.
type ListBudgetsUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute lists the month's budgets with spent amounts computed against that
// month's expense transactions. A dangling category reference degrades to the
// Unknown label; it never fails the request.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	start, end, err := report.MonthBounds(input.Month)
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidBudgetMonth,
		)
	}

	budgets, err := uc.budgetRepo.FindByUserAndMonth(ctx, input.UserID, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	transactions, err := uc.transactionRepo.FindByUserAndDateRange(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for budgets: %w", err)
	}

	// Expense totals per category id for the month.
	spentByCategory := make(map[uuid.UUID]decimal.Decimal)
	for _, tx := range transactions {
		if tx.Transaction.Type != entity.TransactionTypeExpense || tx.Transaction.CategoryID == nil {
			continue
		}
		id := *tx.Transaction.CategoryID
		spentByCategory[id] = spentByCategory[id].Add(tx.Transaction.Amount)
	}

	views := make([]*BudgetView, 0, len(budgets))
	for _, b := range budgets {
		spent := spentByCategory[b.Budget.CategoryID]
		percentage, status := report.BudgetProgress(b.Budget.Amount, spent)
		rounded, _ := percentage.Round(2).Float64()

		view := &BudgetView{
			Budget:        b.Budget,
			CategoryName:  UnknownCategoryName,
			CategoryColor: UnknownCategoryColor,
			Spent:         spent,
			Percentage:    rounded,
			Status:        status,
		}
		if b.Category != nil {
			view.CategoryName = b.Category.Name
			view.CategoryColor = b.Category.Color
		}
		views = append(views, view)
	}

	return &ListBudgetsOutput{Month: input.Month, Budgets: views}, nil
}
