package budget

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/budgetlens/backend/internal/application/usecase/report"
	"github.com/budgetlens/backend/internal/domain/entity"
	domainerror "github.com/budgetlens/backend/internal/domain/error"
)

type storedBudgetRepo struct {
	mockBudgetRepo
	budget  *entity.Budget
	updated *entity.Budget
}

func (m *storedBudgetRepo) FindByID(context.Context, uuid.UUID) (*entity.Budget, error) {
	return m.budget, nil
}

func (m *storedBudgetRepo) Update(_ context.Context, budget *entity.Budget) error {
	m.updated = budget
	return nil
}

func TestUpdateBudget(t *testing.T) {
	userID := uuid.New()
	category := entity.NewCategory(userID, "Food & Dining", entity.CategoryTypeExpense, "utensils", "#ef4444")

	t.Run("recomputes progress against the new amount", func(t *testing.T) {
		budget := entity.NewBudget(userID, category.ID, dec("400"), "2025-05")
		repo := &storedBudgetRepo{budget: budget}
		uc := NewUpdateBudgetUseCase(
			repo,
			&stubCategoryRepo{category: category},
			&mockTransactionRepo{transactions: []*entity.TransactionWithCategory{
				expenseInCategory(userID, category.ID, "300"),
			}},
		)

		output, err := uc.Execute(context.Background(), UpdateBudgetInput{
			UserID:   userID,
			BudgetID: budget.ID,
			Amount:   dec("200"),
		})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if repo.updated == nil || !repo.updated.Amount.Equal(dec("200")) {
			t.Errorf("persisted amount = %v, want 200", repo.updated)
		}

		view := output.View
		if got := view.Spent.String(); got != "300" {
			t.Errorf("Spent = %s, want 300", got)
		}
		if view.Percentage != 150 {
			t.Errorf("Percentage = %v, want 150", view.Percentage)
		}
		if view.Status != report.BudgetStatusOverBudget {
			t.Errorf("Status = %q, want %q", view.Status, report.BudgetStatusOverBudget)
		}
		if view.CategoryName != "Food & Dining" {
			t.Errorf("CategoryName = %q, want Food & Dining", view.CategoryName)
		}
		if view.CategoryColor != "#ef4444" {
			t.Errorf("CategoryColor = %q, want #ef4444", view.CategoryColor)
		}
	})

	t.Run("dangling category degrades to the unknown label", func(t *testing.T) {
		budget := entity.NewBudget(userID, category.ID, dec("400"), "2025-05")
		uc := NewUpdateBudgetUseCase(
			&storedBudgetRepo{budget: budget},
			&stubCategoryRepo{category: nil},
			&mockTransactionRepo{},
		)

		output, err := uc.Execute(context.Background(), UpdateBudgetInput{
			UserID:   userID,
			BudgetID: budget.ID,
			Amount:   dec("500"),
		})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if output.View.CategoryName != UnknownCategoryName {
			t.Errorf("CategoryName = %q, want %q", output.View.CategoryName, UnknownCategoryName)
		}
		if output.View.Status != report.BudgetStatusOnTrack {
			t.Errorf("Status = %q, want on track with zero spent", output.View.Status)
		}
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		uc := NewUpdateBudgetUseCase(&storedBudgetRepo{}, &stubCategoryRepo{}, &mockTransactionRepo{})

		_, err := uc.Execute(context.Background(), UpdateBudgetInput{
			UserID:   userID,
			BudgetID: uuid.New(),
			Amount:   dec("0"),
		})
		if !errors.Is(err, domainerror.ErrInvalidBudgetAmount) {
			t.Errorf("err = %v, want ErrInvalidBudgetAmount", err)
		}
	})

	t.Run("missing budget yields not found", func(t *testing.T) {
		uc := NewUpdateBudgetUseCase(&storedBudgetRepo{}, &stubCategoryRepo{}, &mockTransactionRepo{})

		_, err := uc.Execute(context.Background(), UpdateBudgetInput{
			UserID:   userID,
			BudgetID: uuid.New(),
			Amount:   dec("100"),
		})
		if !errors.Is(err, domainerror.ErrBudgetNotFound) {
			t.Errorf("err = %v, want ErrBudgetNotFound", err)
		}
	})

	t.Run("another user's budget is unauthorized", func(t *testing.T) {
		budget := entity.NewBudget(uuid.New(), category.ID, dec("400"), "2025-05")
		uc := NewUpdateBudgetUseCase(
			&storedBudgetRepo{budget: budget},
			&stubCategoryRepo{category: category},
			&mockTransactionRepo{},
		)

		_, err := uc.Execute(context.Background(), UpdateBudgetInput{
			UserID:   userID,
			BudgetID: budget.ID,
			Amount:   dec("100"),
		})
		if !errors.Is(err, domainerror.ErrUnauthorizedBudgetAccess) {
			t.Errorf("err = %v, want ErrUnauthorizedBudgetAccess", err)
		}
	})
}
