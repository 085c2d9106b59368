// Package report contains the monthly aggregation engine and reporting use cases.
package report

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetlens/backend/internal/domain/entity"
)

// UncategorizedName is the display name for transactions without a resolvable category.
const UncategorizedName = "Uncategorized"

// Budget status labels, classified against the unrounded percentage.
const (
	BudgetStatusOverBudget = "Over Budget"
	BudgetStatusWarning    = "Warning"
	BudgetStatusOnTrack    = "On Track"
)

// CategorizedTransaction is the aggregation engine's view of a transaction:
// a type, an amount, and an already-resolved category display name. Reference
// resolution happens in the facade; the engine never sees category IDs.
type CategorizedTransaction struct {
	Type         entity.TransactionType
	Amount       decimal.Decimal
	CategoryName string
}

// CategoryGroup is one row of a category breakdown.
type CategoryGroup struct {
	Name       string
	Type       entity.TransactionType
	Amount     decimal.Decimal
	Count      int
	Percentage float64
}

// MonthlySummary holds the aggregate totals and per-category breakdown for a
// set of transactions.
type MonthlySummary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetBalance    decimal.Decimal
	Breakdown     []CategoryGroup
}

// ResolveCategoryName returns the display name for a transaction's category,
// degrading to UncategorizedName when the reference is absent or dangling.
func ResolveCategoryName(category *entity.Category) string {
	if category == nil || category.Name == "" {
		return UncategorizedName
	}
	return category.Name
}

// ToCategorized converts repository rows into the engine's input shape.
func ToCategorized(transactions []*entity.TransactionWithCategory) []CategorizedTransaction {
	out := make([]CategorizedTransaction, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, CategorizedTransaction{
			Type:         t.Transaction.Type,
			Amount:       t.Transaction.Amount,
			CategoryName: ResolveCategoryName(t.Category),
		})
	}
	return out
}

// Summarize aggregates transactions into totals and a category breakdown.
//
// Groups are keyed by (name, type); each group's percentage is its share of
// the total for its own type (expenses against total expenses, income against
// total income), or 0 when that total is zero. The breakdown is sorted by
// amount descending; ties keep first-encounter order. Empty input yields zero
// totals and an empty breakdown.
func Summarize(transactions []CategorizedTransaction) *MonthlySummary {
	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero

	type groupKey struct {
		name string
		t    entity.TransactionType
	}
	groups := make(map[groupKey]*CategoryGroup)
	order := make([]groupKey, 0)

	for _, tx := range transactions {
		switch tx.Type {
		case entity.TransactionTypeIncome:
			totalIncome = totalIncome.Add(tx.Amount)
		case entity.TransactionTypeExpense:
			totalExpenses = totalExpenses.Add(tx.Amount)
		default:
			continue
		}

		name := tx.CategoryName
		if name == "" {
			name = UncategorizedName
		}
		key := groupKey{name: name, t: tx.Type}
		group, ok := groups[key]
		if !ok {
			group = &CategoryGroup{Name: name, Type: tx.Type}
			groups[key] = group
			order = append(order, key)
		}
		group.Amount = group.Amount.Add(tx.Amount)
		group.Count++
	}

	breakdown := make([]CategoryGroup, 0, len(order))
	for _, key := range order {
		group := groups[key]
		denominator := totalExpenses
		if group.Type == entity.TransactionTypeIncome {
			denominator = totalIncome
		}
		if !denominator.IsZero() {
			pct := group.Amount.Mul(decimal.NewFromInt(100)).Div(denominator)
			group.Percentage, _ = pct.Round(2).Float64()
		}
		breakdown = append(breakdown, *group)
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Amount.GreaterThan(breakdown[j].Amount)
	})

	return &MonthlySummary{
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		NetBalance:    totalIncome.Sub(totalExpenses),
		Breakdown:     breakdown,
	}
}

// TopByType returns at most limit groups of the given type, keeping the
// breakdown's amount-descending order.
func TopByType(breakdown []CategoryGroup, transactionType entity.TransactionType, limit int) []CategoryGroup {
	top := make([]CategoryGroup, 0, limit)
	for _, group := range breakdown {
		if group.Type != transactionType {
			continue
		}
		top = append(top, group)
		if len(top) == limit {
			break
		}
	}
	return top
}

// BudgetProgress computes how much of a budget is consumed and classifies it.
// Classification uses the unrounded percentage: >=100 is Over Budget, >=80 is
// Warning, anything below is On Track.
func BudgetProgress(budgetAmount, spent decimal.Decimal) (percentage decimal.Decimal, status string) {
	if budgetAmount.IsPositive() {
		percentage = spent.Mul(decimal.NewFromInt(100)).Div(budgetAmount)
	} else {
		percentage = decimal.Zero
	}

	switch {
	case percentage.GreaterThanOrEqual(decimal.NewFromInt(100)):
		status = BudgetStatusOverBudget
	case percentage.GreaterThanOrEqual(decimal.NewFromInt(80)):
		status = BudgetStatusWarning
	default:
		status = BudgetStatusOnTrack
	}
	return percentage, status
}

// GoalProgressResult holds the derived fields for a savings goal.
type GoalProgressResult struct {
	Percentage      float64
	Remaining       decimal.Decimal
	DaysRemaining   *int
	MonthlyRequired *decimal.Decimal
}

// GoalProgress derives progress figures for a goal at the given instant.
//
// DaysRemaining is nil without a deadline and may be negative for past
// deadlines. MonthlyRequired keeps the thirty-day-month approximation
// (remaining / (daysRemaining / 30)) and is only set while the deadline is in
// the future and something is left to save.
func GoalProgress(goal *entity.Goal, now time.Time) GoalProgressResult {
	result := GoalProgressResult{
		Remaining: goal.TargetAmount.Sub(goal.CurrentAmount),
	}

	if goal.TargetAmount.IsPositive() {
		pct := goal.CurrentAmount.Mul(decimal.NewFromInt(100)).Div(goal.TargetAmount)
		result.Percentage, _ = pct.Round(2).Float64()
	}

	if goal.Deadline != nil {
		days := int(math.Ceil(goal.Deadline.Sub(now).Hours() / 24))
		result.DaysRemaining = &days

		if days > 0 && result.Remaining.IsPositive() {
			required := result.Remaining.Mul(decimal.NewFromInt(30)).Div(decimal.NewFromInt(int64(days)))
			result.MonthlyRequired = &required
		}
	}

	return result
}
