package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetlens/backend/internal/domain/entity"
)

func dec(value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name              string
		transactions      []CategorizedTransaction
		wantIncome        string
		wantExpenses      string
		wantNet           string
		wantBreakdownLen  int
	}{
		{
			name:             "empty input yields zero totals and empty breakdown",
			transactions:     nil,
			wantIncome:       "0",
			wantExpenses:     "0",
			wantNet:          "0",
			wantBreakdownLen: 0,
		},
		{
			name: "income and expenses across categories",
			transactions: []CategorizedTransaction{
				{Type: entity.TransactionTypeIncome, Amount: dec("1000"), CategoryName: "Salary"},
				{Type: entity.TransactionTypeExpense, Amount: dec("200"), CategoryName: "Food & Dining"},
				{Type: entity.TransactionTypeExpense, Amount: dec("300"), CategoryName: "Food & Dining"},
				{Type: entity.TransactionTypeExpense, Amount: dec("100"), CategoryName: "Transportation"},
			},
			wantIncome:       "1000",
			wantExpenses:     "600",
			wantNet:          "400",
			wantBreakdownLen: 3,
		},
		{
			name: "expenses only leaves income percentage denominators at zero",
			transactions: []CategorizedTransaction{
				{Type: entity.TransactionTypeExpense, Amount: dec("50"), CategoryName: "Shopping"},
			},
			wantIncome:       "0",
			wantExpenses:     "50",
			wantNet:          "-50",
			wantBreakdownLen: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Summarize(tt.transactions)

			if got := summary.TotalIncome.String(); got != tt.wantIncome {
				t.Errorf("TotalIncome = %s, want %s", got, tt.wantIncome)
			}
			if got := summary.TotalExpenses.String(); got != tt.wantExpenses {
				t.Errorf("TotalExpenses = %s, want %s", got, tt.wantExpenses)
			}
			if got := summary.NetBalance.String(); got != tt.wantNet {
				t.Errorf("NetBalance = %s, want %s", got, tt.wantNet)
			}
			if len(summary.Breakdown) != tt.wantBreakdownLen {
				t.Errorf("len(Breakdown) = %d, want %d", len(summary.Breakdown), tt.wantBreakdownLen)
			}

			// Net balance identity holds for every input.
			if !summary.TotalIncome.Sub(summary.TotalExpenses).Equal(summary.NetBalance) {
				t.Error("NetBalance != TotalIncome - TotalExpenses")
			}

			// Every transaction is attributed to exactly one group.
			groupTotal := decimal.Zero
			for _, group := range summary.Breakdown {
				groupTotal = groupTotal.Add(group.Amount)
			}
			if !groupTotal.Equal(summary.TotalIncome.Add(summary.TotalExpenses)) {
				t.Errorf("breakdown sum = %s, want %s", groupTotal, summary.TotalIncome.Add(summary.TotalExpenses))
			}

			// Percentages stay defined and non-negative.
			for _, group := range summary.Breakdown {
				if group.Percentage < 0 {
					t.Errorf("group %q percentage = %f, want >= 0", group.Name, group.Percentage)
				}
			}
		})
	}
}

func TestSummarizePercentages(t *testing.T) {
	summary := Summarize([]CategorizedTransaction{
		{Type: entity.TransactionTypeIncome, Amount: dec("1000"), CategoryName: "Salary"},
		{Type: entity.TransactionTypeExpense, Amount: dec("200"), CategoryName: "Food & Dining"},
		{Type: entity.TransactionTypeExpense, Amount: dec("300"), CategoryName: "Food & Dining"},
		{Type: entity.TransactionTypeExpense, Amount: dec("100"), CategoryName: "Transportation"},
	})

	byName := make(map[string]CategoryGroup)
	for _, group := range summary.Breakdown {
		byName[group.Name+"/"+string(group.Type)] = group
	}

	food := byName["Food & Dining/expense"]
	if got := food.Amount.String(); got != "500" {
		t.Errorf("Food & Dining amount = %s, want 500", got)
	}
	if food.Percentage != 83.33 {
		t.Errorf("Food & Dining percentage = %v, want 83.33", food.Percentage)
	}
	if food.Count != 2 {
		t.Errorf("Food & Dining count = %d, want 2", food.Count)
	}

	transport := byName["Transportation/expense"]
	if got := transport.Amount.String(); got != "100" {
		t.Errorf("Transportation amount = %s, want 100", got)
	}
	if transport.Percentage != 16.67 {
		t.Errorf("Transportation percentage = %v, want 16.67", transport.Percentage)
	}

	salary := byName["Salary/income"]
	if salary.Percentage != 100 {
		t.Errorf("Salary percentage = %v, want 100", salary.Percentage)
	}

	// Breakdown is sorted descending by amount.
	for i := 1; i < len(summary.Breakdown); i++ {
		if summary.Breakdown[i].Amount.GreaterThan(summary.Breakdown[i-1].Amount) {
			t.Errorf("breakdown not sorted descending at index %d", i)
		}
	}
}

func TestSummarizeZeroDenominator(t *testing.T) {
	// A lone income transaction: expense groups would divide by zero; income
	// groups divide by the income total. Neither may produce NaN or Inf.
	summary := Summarize([]CategorizedTransaction{
		{Type: entity.TransactionTypeExpense, Amount: dec("0"), CategoryName: "Shopping"},
		{Type: entity.TransactionTypeIncome, Amount: dec("0"), CategoryName: "Salary"},
	})

	for _, group := range summary.Breakdown {
		if group.Percentage != 0 {
			t.Errorf("group %q percentage = %v, want 0 for zero denominator", group.Name, group.Percentage)
		}
	}
}

func TestSummarizeUncategorized(t *testing.T) {
	dangling := entity.NewTransaction(
		uuid.New(), entity.TransactionTypeExpense, dec("75"), nil, "bus ticket", time.Now(),
	)

	transactions := []*entity.TransactionWithCategory{
		{Transaction: dangling, Category: nil},
	}

	summary := Summarize(ToCategorized(transactions))

	if len(summary.Breakdown) != 1 {
		t.Fatalf("len(Breakdown) = %d, want 1", len(summary.Breakdown))
	}
	if summary.Breakdown[0].Name != UncategorizedName {
		t.Errorf("group name = %q, want %q", summary.Breakdown[0].Name, UncategorizedName)
	}
	if got := summary.Breakdown[0].Amount.String(); got != "75" {
		t.Errorf("group amount = %s, want 75", got)
	}
}

func TestTopByType(t *testing.T) {
	summary := Summarize([]CategorizedTransaction{
		{Type: entity.TransactionTypeExpense, Amount: dec("600"), CategoryName: "Bills & Utilities"},
		{Type: entity.TransactionTypeExpense, Amount: dec("500"), CategoryName: "Food & Dining"},
		{Type: entity.TransactionTypeExpense, Amount: dec("400"), CategoryName: "Shopping"},
		{Type: entity.TransactionTypeExpense, Amount: dec("300"), CategoryName: "Transportation"},
		{Type: entity.TransactionTypeExpense, Amount: dec("200"), CategoryName: "Entertainment"},
		{Type: entity.TransactionTypeExpense, Amount: dec("100"), CategoryName: "Other"},
		{Type: entity.TransactionTypeIncome, Amount: dec("5000"), CategoryName: "Salary"},
		{Type: entity.TransactionTypeIncome, Amount: dec("800"), CategoryName: "Freelance"},
	})

	topExpenses := TopByType(summary.Breakdown, entity.TransactionTypeExpense, 5)
	if len(topExpenses) != 5 {
		t.Fatalf("len(topExpenses) = %d, want 5", len(topExpenses))
	}
	if topExpenses[0].Name != "Bills & Utilities" {
		t.Errorf("topExpenses[0] = %q, want Bills & Utilities", topExpenses[0].Name)
	}
	for i, group := range topExpenses {
		if group.Type != entity.TransactionTypeExpense {
			t.Errorf("topExpenses[%d] has type %s, want expense", i, group.Type)
		}
	}
	for i := 1; i < len(topExpenses); i++ {
		if topExpenses[i].Amount.GreaterThan(topExpenses[i-1].Amount) {
			t.Errorf("topExpenses not sorted descending at index %d", i)
		}
	}

	topIncome := TopByType(summary.Breakdown, entity.TransactionTypeIncome, 5)
	if len(topIncome) != 2 {
		t.Fatalf("len(topIncome) = %d, want 2", len(topIncome))
	}
	if topIncome[0].Name != "Salary" || topIncome[1].Name != "Freelance" {
		t.Errorf("topIncome order = [%s, %s], want [Salary, Freelance]", topIncome[0].Name, topIncome[1].Name)
	}
}

func TestBudgetProgress(t *testing.T) {
	tests := []struct {
		name           string
		budgetAmount   string
		spent          string
		wantPercentage string
		wantStatus     string
	}{
		{
			name:           "under budget is on track",
			budgetAmount:   "400",
			spent:          "100",
			wantPercentage: "25",
			wantStatus:     BudgetStatusOnTrack,
		},
		{
			name:           "exactly 80 percent is a warning",
			budgetAmount:   "400",
			spent:          "320",
			wantPercentage: "80",
			wantStatus:     BudgetStatusWarning,
		},
		{
			name:           "just under 80 percent stays on track",
			budgetAmount:   "400",
			spent:          "319.99",
			wantPercentage: "79.9975",
			wantStatus:     BudgetStatusOnTrack,
		},
		{
			name:           "exactly 100 percent is over budget",
			budgetAmount:   "400",
			spent:          "400",
			wantPercentage: "100",
			wantStatus:     BudgetStatusOverBudget,
		},
		{
			name:           "beyond the budget is over budget",
			budgetAmount:   "400",
			spent:          "600",
			wantPercentage: "150",
			wantStatus:     BudgetStatusOverBudget,
		},
		{
			name:           "zero spent",
			budgetAmount:   "400",
			spent:          "0",
			wantPercentage: "0",
			wantStatus:     BudgetStatusOnTrack,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			percentage, status := BudgetProgress(dec(tt.budgetAmount), dec(tt.spent))

			if got := percentage.String(); got != tt.wantPercentage {
				t.Errorf("percentage = %s, want %s", got, tt.wantPercentage)
			}
			if status != tt.wantStatus {
				t.Errorf("status = %q, want %q", status, tt.wantStatus)
			}
		})
	}
}

func TestGoalProgress(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("fully funded goal", func(t *testing.T) {
		goal := &entity.Goal{TargetAmount: dec("1000"), CurrentAmount: dec("1000")}
		result := GoalProgress(goal, now)

		if result.Percentage != 100 {
			t.Errorf("Percentage = %v, want 100", result.Percentage)
		}
		if !result.Remaining.IsZero() {
			t.Errorf("Remaining = %s, want 0", result.Remaining)
		}
		if result.MonthlyRequired != nil {
			t.Error("MonthlyRequired should be nil when nothing remains")
		}
	})

	t.Run("unfunded goal", func(t *testing.T) {
		goal := &entity.Goal{TargetAmount: dec("500"), CurrentAmount: dec("0")}
		result := GoalProgress(goal, now)

		if result.Percentage != 0 {
			t.Errorf("Percentage = %v, want 0", result.Percentage)
		}
		if got := result.Remaining.String(); got != "500" {
			t.Errorf("Remaining = %s, want 500", got)
		}
		if result.DaysRemaining != nil {
			t.Error("DaysRemaining should be nil without a deadline")
		}
	})

	t.Run("thirty day month approximation", func(t *testing.T) {
		deadline := now.AddDate(0, 0, 60)
		goal := &entity.Goal{TargetAmount: dec("1000"), CurrentAmount: dec("400"), Deadline: &deadline}
		result := GoalProgress(goal, now)

		if result.DaysRemaining == nil || *result.DaysRemaining != 60 {
			t.Fatalf("DaysRemaining = %v, want 60", result.DaysRemaining)
		}
		// 600 remaining over 60 days = 600 / (60/30) = 300 per month.
		if result.MonthlyRequired == nil || result.MonthlyRequired.String() != "300" {
			t.Errorf("MonthlyRequired = %v, want 300", result.MonthlyRequired)
		}
	})

	t.Run("past deadline", func(t *testing.T) {
		deadline := now.AddDate(0, 0, -10)
		goal := &entity.Goal{TargetAmount: dec("1000"), CurrentAmount: dec("100"), Deadline: &deadline}
		result := GoalProgress(goal, now)

		if result.DaysRemaining == nil || *result.DaysRemaining >= 0 {
			t.Fatalf("DaysRemaining = %v, want negative", result.DaysRemaining)
		}
		if result.MonthlyRequired != nil {
			t.Error("MonthlyRequired should be nil for past deadlines")
		}
	})
}
