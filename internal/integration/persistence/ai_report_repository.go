// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budgetlens/backend/internal/application/adapter"
	"github.com/budgetlens/backend/internal/domain/entity"
	"github.com/budgetlens/backend/internal/integration/persistence/model"
)

// aiReportRepository implements the adapter.AIReportRepository interface.
type aiReportRepository struct {
	db *gorm.DB
}

// NewAIReportRepository creates a new AI report repository instance.
func NewAIReportRepository(db *gorm.DB) adapter.AIReportRepository {
	return &aiReportRepository{
		db: db,
	}
}

// CreateOrGetExisting inserts the report and lets the (user_id, month) unique
// index arbitrate races: the loser reads back the winner's row and returns it
// with created=false. Insert and read-back, never check-then-act.
func (r *aiReportRepository) CreateOrGetExisting(ctx context.Context, report *entity.AIReport) (*entity.AIReport, bool, error) {
	reportModel, err := model.AIReportFromEntity(report)
	if err != nil {
		return nil, false, fmt.Errorf("failed to encode financial data: %w", err)
	}

	result := r.db.WithContext(ctx).Create(reportModel)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			existing, err := r.FindByUserAndMonth(ctx, report.UserID, report.Month)
			if err != nil {
				return nil, false, err
			}
			if existing == nil {
				// The winner's row vanished between insert and read-back;
				// surface the original conflict to the caller.
				return nil, false, result.Error
			}
			return existing, false, nil
		}
		return nil, false, result.Error
	}

	return report, true, nil
}

// FindByUserAndMonth retrieves the report for a user and month. Returns nil
// when absent.
func (r *aiReportRepository) FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month string) (*entity.AIReport, error) {
	var reportModel model.AIReportModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ?", userID, month).
		First(&reportModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return reportModel.ToEntity(), nil
}

// FindByUser retrieves all reports for a user, newest month first.
func (r *aiReportRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.AIReport, error) {
	var reportModels []model.AIReportModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("month DESC").
		Find(&reportModels)
	if result.Error != nil {
		return nil, result.Error
	}

	reports := make([]*entity.AIReport, 0, len(reportModels))
	for i := range reportModels {
		reports = append(reports, reportModels[i].ToEntity())
	}
	return reports, nil
}
