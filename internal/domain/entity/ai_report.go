// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// FinancialSnapshot captures the aggregate figures a report was generated from.
type FinancialSnapshot struct {
	TotalIncome      float64 `json:"totalIncome"`
	TotalExpenses    float64 `json:"totalExpenses"`
	NetBalance       float64 `json:"netBalance"`
	TransactionCount int     `json:"transactionCount"`
}

// AIReport represents a generated monthly narrative report.
// At most one report exists per (user, month); generation is idempotent.
type AIReport struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Month         string // Format: YYYY-MM
	ReportContent string
	FinancialData FinancialSnapshot
	GeneratedAt   time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewAIReport creates a new AIReport entity.
func NewAIReport(userID uuid.UUID, month, reportContent string, financialData FinancialSnapshot) *AIReport {
	now := time.Now().UTC()

	return &AIReport{
		ID:            uuid.New(),
		UserID:        userID,
		Month:         month,
		ReportContent: reportContent,
		FinancialData: financialData,
		GeneratedAt:   now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
