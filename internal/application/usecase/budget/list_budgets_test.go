package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetlens/backend/internal/application/adapter"
	"github.com/budgetlens/backend/internal/application/usecase/report"
	"github.com/budgetlens/backend/internal/domain/entity"
	domainerror "github.com/budgetlens/backend/internal/domain/error"
)

func dec(value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return d
}

type mockBudgetRepo struct {
	budgets []*entity.BudgetWithCategory
}

func (m *mockBudgetRepo) Create(context.Context, *entity.Budget) error { return nil }
func (m *mockBudgetRepo) FindByID(context.Context, uuid.UUID) (*entity.Budget, error) {
	return nil, nil
}
func (m *mockBudgetRepo) FindByUserAndMonth(context.Context, uuid.UUID, string) ([]*entity.BudgetWithCategory, error) {
	return m.budgets, nil
}
func (m *mockBudgetRepo) Update(context.Context, *entity.Budget) error { return nil }
func (m *mockBudgetRepo) Delete(context.Context, uuid.UUID) error      { return nil }

type mockTransactionRepo struct {
	transactions []*entity.TransactionWithCategory
}

func (m *mockTransactionRepo) Create(context.Context, *entity.Transaction) error { return nil }
func (m *mockTransactionRepo) FindByID(context.Context, uuid.UUID) (*entity.Transaction, error) {
	return nil, nil
}
func (m *mockTransactionRepo) FindByIDWithCategory(context.Context, uuid.UUID) (*entity.TransactionWithCategory, error) {
	return nil, nil
}
func (m *mockTransactionRepo) FindByFilter(context.Context, adapter.TransactionFilter, adapter.TransactionPagination) (*entity.TransactionListResult, error) {
	return nil, nil
}
func (m *mockTransactionRepo) FindByUserAndDateRange(context.Context, uuid.UUID, time.Time, time.Time) ([]*entity.TransactionWithCategory, error) {
	return m.transactions, nil
}
func (m *mockTransactionRepo) Update(context.Context, *entity.Transaction) error { return nil }
func (m *mockTransactionRepo) Delete(context.Context, uuid.UUID) error           { return nil }

func expenseInCategory(userID, categoryID uuid.UUID, amount string) *entity.TransactionWithCategory {
	tx := entity.NewTransaction(userID, entity.TransactionTypeExpense, dec(amount), &categoryID, "", time.Now())
	return &entity.TransactionWithCategory{Transaction: tx}
}

func TestListBudgets(t *testing.T) {
	userID := uuid.New()
	category := entity.NewCategory(userID, "Food & Dining", entity.CategoryTypeExpense, "utensils", "#ef4444")
	budget := entity.NewBudget(userID, category.ID, dec("400"), "2025-05")

	t.Run("computes spent and warning status at exactly eighty percent", func(t *testing.T) {
		uc := NewListBudgetsUseCase(
			&mockBudgetRepo{budgets: []*entity.BudgetWithCategory{{Budget: budget, Category: category}}},
			&mockTransactionRepo{transactions: []*entity.TransactionWithCategory{
				expenseInCategory(userID, category.ID, "100"),
				expenseInCategory(userID, category.ID, "220"),
			}},
		)

		output, err := uc.Execute(context.Background(), ListBudgetsInput{UserID: userID, Month: "2025-05"})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if len(output.Budgets) != 1 {
			t.Fatalf("len(Budgets) = %d, want 1", len(output.Budgets))
		}

		view := output.Budgets[0]
		if got := view.Spent.String(); got != "320" {
			t.Errorf("Spent = %s, want 320", got)
		}
		if view.Percentage != 80 {
			t.Errorf("Percentage = %v, want 80", view.Percentage)
		}
		if view.Status != report.BudgetStatusWarning {
			t.Errorf("Status = %q, want %q", view.Status, report.BudgetStatusWarning)
		}
		if view.CategoryName != "Food & Dining" {
			t.Errorf("CategoryName = %q", view.CategoryName)
		}
	})

	t.Run("dangling category degrades to the unknown label", func(t *testing.T) {
		uc := NewListBudgetsUseCase(
			&mockBudgetRepo{budgets: []*entity.BudgetWithCategory{{Budget: budget, Category: nil}}},
			&mockTransactionRepo{},
		)

		output, err := uc.Execute(context.Background(), ListBudgetsInput{UserID: userID, Month: "2025-05"})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}

		view := output.Budgets[0]
		if view.CategoryName != UnknownCategoryName {
			t.Errorf("CategoryName = %q, want %q", view.CategoryName, UnknownCategoryName)
		}
		if view.CategoryColor != UnknownCategoryColor {
			t.Errorf("CategoryColor = %q, want %q", view.CategoryColor, UnknownCategoryColor)
		}
		if view.Status != report.BudgetStatusOnTrack {
			t.Errorf("Status = %q, want on track with zero spent", view.Status)
		}
	})

	t.Run("expenses from other categories are not counted", func(t *testing.T) {
		otherCategory := uuid.New()
		uc := NewListBudgetsUseCase(
			&mockBudgetRepo{budgets: []*entity.BudgetWithCategory{{Budget: budget, Category: category}}},
			&mockTransactionRepo{transactions: []*entity.TransactionWithCategory{
				expenseInCategory(userID, otherCategory, "999"),
				expenseInCategory(userID, category.ID, "40"),
			}},
		)

		output, err := uc.Execute(context.Background(), ListBudgetsInput{UserID: userID, Month: "2025-05"})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if got := output.Budgets[0].Spent.String(); got != "40" {
			t.Errorf("Spent = %s, want 40", got)
		}
	})

	t.Run("invalid month is rejected", func(t *testing.T) {
		uc := NewListBudgetsUseCase(&mockBudgetRepo{}, &mockTransactionRepo{})

		_, err := uc.Execute(context.Background(), ListBudgetsInput{UserID: userID, Month: "May 2025"})
		if !errors.Is(err, domainerror.ErrInvalidBudgetMonth) {
			t.Errorf("err = %v, want ErrInvalidBudgetMonth", err)
		}
	})
}
