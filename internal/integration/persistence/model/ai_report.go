// Package model defines database models for persistence layer.
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/budgetlens/backend/internal/domain/entity"
)

// AIReportModel represents the ai_reports table in the database.
// (user_id, month) is unique; the index is what makes concurrent generation
// resolve to a single stored report.
type AIReportModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ai_reports_user_month"`
	Month         string    `gorm:"type:varchar(7);not null;uniqueIndex:idx_ai_reports_user_month"`
	ReportContent string    `gorm:"type:text;not null"`
	FinancialData []byte    `gorm:"type:jsonb"`
	GeneratedAt   time.Time `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the AIReportModel.
func (AIReportModel) TableName() string {
	return "ai_reports"
}

// ToEntity converts an AIReportModel to a domain AIReport entity.
func (m *AIReportModel) ToEntity() *entity.AIReport {
	var snapshot entity.FinancialSnapshot
	if len(m.FinancialData) > 0 {
		// A malformed snapshot leaves the zero value rather than failing the read.
		_ = json.Unmarshal(m.FinancialData, &snapshot)
	}

	return &entity.AIReport{
		ID:            m.ID,
		UserID:        m.UserID,
		Month:         m.Month,
		ReportContent: m.ReportContent,
		FinancialData: snapshot,
		GeneratedAt:   m.GeneratedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// AIReportFromEntity creates an AIReportModel from a domain AIReport entity.
func AIReportFromEntity(report *entity.AIReport) (*AIReportModel, error) {
	data, err := json.Marshal(report.FinancialData)
	if err != nil {
		return nil, err
	}

	return &AIReportModel{
		ID:            report.ID,
		UserID:        report.UserID,
		Month:         report.Month,
		ReportContent: report.ReportContent,
		FinancialData: data,
		GeneratedAt:   report.GeneratedAt,
		CreatedAt:     report.CreatedAt,
		UpdatedAt:     report.UpdatedAt,
	}, nil
}
