package budget

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/budgetlens/backend/internal/domain/entity"
	domainerror "github.com/budgetlens/backend/internal/domain/error"
)

type stubCategoryRepo struct {
	category *entity.Category
}

func (m *stubCategoryRepo) Create(context.Context, *entity.Category) error { return nil }
func (m *stubCategoryRepo) FindByID(context.Context, uuid.UUID) (*entity.Category, error) {
	return m.category, nil
}
func (m *stubCategoryRepo) FindByUser(context.Context, uuid.UUID) ([]*entity.Category, error) {
	return nil, nil
}
func (m *stubCategoryRepo) FindByUserAndType(context.Context, uuid.UUID, entity.CategoryType) ([]*entity.Category, error) {
	return nil, nil
}
func (m *stubCategoryRepo) Update(context.Context, *entity.Category) error { return nil }
func (m *stubCategoryRepo) Delete(context.Context, uuid.UUID) error        { return nil }
func (m *stubCategoryRepo) ExistsByNameAndUser(context.Context, string, uuid.UUID) (bool, error) {
	return false, nil
}
func (m *stubCategoryRepo) CountByUser(context.Context, uuid.UUID) (int64, error) { return 0, nil }

type conflictBudgetRepo struct {
	mockBudgetRepo
	createErr error
	created   []*entity.Budget
}

func (m *conflictBudgetRepo) Create(_ context.Context, budget *entity.Budget) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, budget)
	return nil
}

func TestCreateBudget(t *testing.T) {
	userID := uuid.New()
	expenseCategory := entity.NewCategory(userID, "Shopping", entity.CategoryTypeExpense, "shopping-bag", "#ec4899")
	incomeCategory := entity.NewCategory(userID, "Salary", entity.CategoryTypeIncome, "wallet", "#10b981")

	tests := []struct {
		name      string
		category  *entity.Category
		amount    string
		month     string
		createErr error
		wantErr   error
	}{
		{
			name:     "creates a valid budget",
			category: expenseCategory,
			amount:   "400",
			month:    "2025-05",
		},
		{
			name:     "rejects non-positive amount",
			category: expenseCategory,
			amount:   "0",
			month:    "2025-05",
			wantErr:  domainerror.ErrInvalidBudgetAmount,
		},
		{
			name:     "rejects malformed month",
			category: expenseCategory,
			amount:   "400",
			month:    "2025/05",
			wantErr:  domainerror.ErrInvalidBudgetMonth,
		},
		{
			name:     "rejects missing category",
			category: nil,
			amount:   "400",
			month:    "2025-05",
			wantErr:  domainerror.ErrBudgetCategoryNotFound,
		},
		{
			name:     "rejects income category",
			category: incomeCategory,
			amount:   "400",
			month:    "2025-05",
			wantErr:  domainerror.ErrBudgetCategoryNotExpense,
		},
		{
			name:      "duplicate key surfaces as conflict",
			category:  expenseCategory,
			amount:    "400",
			month:     "2025-05",
			createErr: domainerror.ErrBudgetAlreadyExists,
			wantErr:   domainerror.ErrBudgetAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			categoryID := uuid.New()
			if tt.category != nil {
				categoryID = tt.category.ID
			}

			uc := NewCreateBudgetUseCase(
				&conflictBudgetRepo{createErr: tt.createErr},
				&stubCategoryRepo{category: tt.category},
			)

			output, err := uc.Execute(context.Background(), CreateBudgetInput{
				UserID:     userID,
				CategoryID: categoryID,
				Amount:     dec(tt.amount),
				Month:      tt.month,
			})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Execute returned error: %v", err)
			}
			if output.Budget.Month != tt.month {
				t.Errorf("Month = %q, want %q", output.Budget.Month, tt.month)
			}
			if !output.Budget.Amount.Equal(dec(tt.amount)) {
				t.Errorf("Amount = %s, want %s", output.Budget.Amount, tt.amount)
			}
			if output.Category == nil || output.Category.ID != tt.category.ID {
				t.Errorf("Category = %v, want the validated category returned", output.Category)
			}
		})
	}
}

func TestCreateBudgetRejectsForeignCategory(t *testing.T) {
	userID := uuid.New()
	otherUsers := entity.NewCategory(uuid.New(), "Shopping", entity.CategoryTypeExpense, "shopping-bag", "#ec4899")

	uc := NewCreateBudgetUseCase(&conflictBudgetRepo{}, &stubCategoryRepo{category: otherUsers})

	_, err := uc.Execute(context.Background(), CreateBudgetInput{
		UserID:     userID,
		CategoryID: otherUsers.ID,
		Amount:     dec("100"),
		Month:      "2025-05",
	})
	if !errors.Is(err, domainerror.ErrBudgetCategoryNotFound) {
		t.Errorf("err = %v, want ErrBudgetCategoryNotFound (foreign category reads as absent)", err)
	}
}
