// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultGoalColor is the default color for savings goals.
const DefaultGoalColor = "#3b82f6"

// Goal represents a savings goal in the BudgetLens system.
// CurrentAmount is adjusted manually by the user; there is no automatic
// linkage between goals and transactions.
type Goal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Category      string // Free text, optional
	Deadline      *time.Time
	Color         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewGoal creates a new Goal entity.
func NewGoal(
	userID uuid.UUID,
	name string,
	targetAmount, currentAmount decimal.Decimal,
	category string,
	deadline *time.Time,
	color string,
) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		Category:      category,
		Deadline:      deadline,
		Color:         color,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// AddFunds increases the goal's current amount by the given amount.
func (g *Goal) AddFunds(amount decimal.Decimal) {
	g.CurrentAmount = g.CurrentAmount.Add(amount)
	g.UpdatedAt = time.Now().UTC()
}
