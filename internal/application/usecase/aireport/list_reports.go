// Package aireport contains the AI monthly narrative report use cases.
package aireport

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetlens/backend/internal/application/adapter"
	"github.com/budgetlens/backend/internal/domain/entity"
)

// ListReportsInput represents the input for listing a user's reports.
type ListReportsInput struct {
	UserID uuid.UUID
}

// ListReportsOutput represents the output of listing reports.
type ListReportsOutput struct {
	Reports []*entity.AIReport
}

// ListReportsUseCase handles listing stored monthly reports.
type ListReportsUseCase struct {
	aiReportRepo adapter.AIReportRepository
}

// NewListReportsUseCase creates a new ListReportsUseCase instance.
func NewListReportsUseCase(aiReportRepo adapter.AIReportRepository) *ListReportsUseCase {
	return &ListReportsUseCase{
		aiReportRepo: aiReportRepo,
	}
}

// Execute returns all of the user's reports, newest month first.
func (uc *ListReportsUseCase) Execute(ctx context.Context, input ListReportsInput) (*ListReportsOutput, error) {
	reports, err := uc.aiReportRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	return &ListReportsOutput{Reports: reports}, nil
}
