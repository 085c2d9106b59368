// Package aireport contains the AI monthly narrative report use cases.
package aireport

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/budgetlens/backend/internal/application/adapter"
	"github.com/budgetlens/backend/internal/application/usecase/report"
)

// AutoGenerateInput represents the input for the batch report run.
// Month defaults to the previous calendar month when empty.
type AutoGenerateInput struct {
	Month string
}

// AutoGenerateOutput tallies the batch run. Errors is keyed by user id.
type AutoGenerateOutput struct {
	Month     string
	Processed int
	Generated int
	Skipped   int
	Errors    map[string]string
}

// AutoGenerateUseCase runs report generation for every user, isolating
// per-user failures so one bad user never aborts the run.
type AutoGenerateUseCase struct {
	userRepo        adapter.UserRepository
	transactionRepo adapter.TransactionRepository
	generate        *GenerateReportUseCase
	now             func() time.Time
}

// NewAutoGenerateUseCase creates a new AutoGenerateUseCase instance.
func NewAutoGenerateUseCase(
	userRepo adapter.UserRepository,
	transactionRepo adapter.TransactionRepository,
	generate *GenerateReportUseCase,
) *AutoGenerateUseCase {
	return &AutoGenerateUseCase{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		generate:        generate,
		now:             time.Now,
	}
}

// Execute iterates all users for the month. Users with no transactions in the
// window are counted as skipped without touching the completion service.
func (uc *AutoGenerateUseCase) Execute(ctx context.Context, input AutoGenerateInput) (*AutoGenerateOutput, error) {
	month := input.Month
	if month == "" {
		month = report.PreviousMonth(uc.now())
	}

	start, end, err := report.MonthBounds(month)
	if err != nil {
		return nil, err
	}

	users, err := uc.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	output := &AutoGenerateOutput{
		Month:  month,
		Errors: make(map[string]string),
	}

	for _, user := range users {
		output.Processed++

		transactions, err := uc.transactionRepo.FindByUserAndDateRange(ctx, user.ID, start, end)
		if err != nil {
			output.Errors[user.ID.String()] = err.Error()
			slog.Error("Batch report generation failed to load transactions",
				"user_id", user.ID, "month", month, "error", err)
			continue
		}
		if len(transactions) == 0 {
			output.Skipped++
			continue
		}

		result, err := uc.generate.Execute(ctx, GenerateReportInput{UserID: user.ID, Month: month})
		if err != nil {
			output.Errors[user.ID.String()] = err.Error()
			slog.Error("Batch report generation failed",
				"user_id", user.ID, "month", month, "error", err)
			continue
		}

		if result.Cached {
			output.Skipped++
		} else {
			output.Generated++
		}
	}

	slog.Info("Batch report generation finished",
		"month", month,
		"processed", output.Processed,
		"generated", output.Generated,
		"skipped", output.Skipped,
		"errors", len(output.Errors),
	)

	return output, nil
}
