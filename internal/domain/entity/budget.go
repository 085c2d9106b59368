// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthFormat is the canonical YYYY-MM layout for budget and report months.
const MonthFormat = "2006-01"

// Budget represents a monthly spending limit for an expense category.
// At most one budget exists per (user, category, month).
type Budget struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Month      string // Format: YYYY-MM
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(userID, categoryID uuid.UUID, amount decimal.Decimal, month string) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
		Month:      month,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// BudgetWithCategory represents a budget with its resolved category.
// Category is nil when the reference no longer resolves.
type BudgetWithCategory struct {
	Budget   *Budget
	Category *Category
}
