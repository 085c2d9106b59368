// Package report contains the monthly aggregation engine and reporting use cases.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetlens/backend/internal/application/adapter"
)

// StatsCache caches dashboard stats per user for a short TTL. A cache miss is
// (nil, nil); cache failures are soft and must never fail the request.
type StatsCache interface {
	GetStats(ctx context.Context, userID uuid.UUID) (*GetDashboardStatsOutput, error)
	SetStats(ctx context.Context, userID uuid.UUID, stats *GetDashboardStatsOutput) error
}

// GetDashboardStatsInput represents the input for getting dashboard stats.
type GetDashboardStatsInput struct {
	UserID uuid.UUID
}

// GetDashboardStatsOutput represents the dashboard headline figures: today's
// activity and the month to date.
type GetDashboardStatsOutput struct {
	TodayIncome             decimal.Decimal `json:"today_income"`
	TodayExpenses           decimal.Decimal `json:"today_expenses"`
	TodayNetBalance         decimal.Decimal `json:"today_net_balance"`
	MonthlyIncome           decimal.Decimal `json:"monthly_income"`
	MonthlyExpenses         decimal.Decimal `json:"monthly_expenses"`
	MonthlyNetBalance       decimal.Decimal `json:"monthly_net_balance"`
	MonthlyTransactionCount int             `json:"monthly_transaction_count"`
}

// GetDashboardStatsUseCase handles dashboard statistics aggregation.
type GetDashboardStatsUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           StatsCache
	now             func() time.Time
}

// NewGetDashboardStatsUseCase creates a new GetDashboardStatsUseCase instance.
// cache may be nil, in which case every request aggregates fresh.
func NewGetDashboardStatsUseCase(transactionRepo adapter.TransactionRepository, cache StatsCache) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
		now:             time.Now,
	}
}

// Execute computes today's and the month-to-date summaries over two
// independent windows. The two windows overlap; a transaction from earlier
// today counts in both.
func (uc *GetDashboardStatsUseCase) Execute(
	ctx context.Context,
	input GetDashboardStatsInput,
) (*GetDashboardStatsOutput, error) {
	if uc.cache != nil {
		cached, err := uc.cache.GetStats(ctx, input.UserID)
		if err != nil {
			slog.Warn("Dashboard stats cache read failed", "user_id", input.UserID, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	now := uc.now()

	todayStart, todayEnd := TodayBounds(now)
	todayTransactions, err := uc.transactionRepo.FindByUserAndDateRange(ctx, input.UserID, todayStart, todayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load today's transactions: %w", err)
	}
	todaySummary := Summarize(ToCategorized(todayTransactions))

	monthStart, monthEnd := MonthToDateBounds(now)
	monthTransactions, err := uc.transactionRepo.FindByUserAndDateRange(ctx, input.UserID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load month-to-date transactions: %w", err)
	}
	monthSummary := Summarize(ToCategorized(monthTransactions))

	output := &GetDashboardStatsOutput{
		TodayIncome:             todaySummary.TotalIncome,
		TodayExpenses:           todaySummary.TotalExpenses,
		TodayNetBalance:         todaySummary.NetBalance,
		MonthlyIncome:           monthSummary.TotalIncome,
		MonthlyExpenses:         monthSummary.TotalExpenses,
		MonthlyNetBalance:       monthSummary.NetBalance,
		MonthlyTransactionCount: len(monthTransactions),
	}

	if uc.cache != nil {
		if err := uc.cache.SetStats(ctx, input.UserID, output); err != nil {
			slog.Warn("Dashboard stats cache write failed", "user_id", input.UserID, "error", err)
		}
	}

	return output, nil
}
