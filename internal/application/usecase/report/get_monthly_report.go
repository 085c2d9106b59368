// Package report contains the monthly aggregation engine and reporting use cases.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetlens/backend/internal/application/adapter"
	"github.com/budgetlens/backend/internal/domain/entity"
)

// GetMonthlyReportInput represents the input for generating a monthly report.
type GetMonthlyReportInput struct {
	UserID uuid.UUID
	Month  string
}

// GetMonthlyReportOutput represents the aggregated monthly report.
type GetMonthlyReportOutput struct {
	Month        string
	Summary      *MonthlySummary
	Transactions []*entity.TransactionWithCategory
}

// GetMonthlyReportUseCase handles monthly report aggregation.
type GetMonthlyReportUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetMonthlyReportUseCase creates a new GetMonthlyReportUseCase instance.
func NewGetMonthlyReportUseCase(transactionRepo adapter.TransactionRepository) *GetMonthlyReportUseCase {
	return &GetMonthlyReportUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute aggregates the user's transactions for the given month.
// Transactions come back sorted by date descending then creation descending,
// each with its resolved category (nil when dangling or absent).
func (uc *GetMonthlyReportUseCase) Execute(
	ctx context.Context,
	input GetMonthlyReportInput,
) (*GetMonthlyReportOutput, error) {
	start, end, err := MonthBounds(input.Month)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindByUserAndDateRange(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for report: %w", err)
	}

	return &GetMonthlyReportOutput{
		Month:        input.Month,
		Summary:      Summarize(ToCategorized(transactions)),
		Transactions: transactions,
	}, nil
}
