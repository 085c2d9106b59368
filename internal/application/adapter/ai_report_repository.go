// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetlens/backend/internal/domain/entity"
)

// AIReportRepository defines the interface for AI report persistence operations.
type AIReportRepository interface {
	// CreateOrGetExisting inserts the report, relying on the (user, month) unique
	// constraint. When a concurrent writer wins the race, the stored report is
	// read back and returned with created=false. The caller never observes the
	// conflict as an error.
	CreateOrGetExisting(ctx context.Context, report *entity.AIReport) (stored *entity.AIReport, created bool, err error)

	// FindByUserAndMonth retrieves the report for a user and month, if any.
	FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month string) (*entity.AIReport, error)

	// FindByUser retrieves all reports for a user, newest month first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.AIReport, error)
}
