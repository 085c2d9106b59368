package dto

import (
	"time"

	"github.com/budgetlens/backend/internal/application/usecase/goal"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=100"`
	TargetAmount  float64 `json:"target_amount" binding:"required,gt=0"`
	CurrentAmount float64 `json:"current_amount" binding:"omitempty,gte=0"`
	Category      string  `json:"category,omitempty"`
	Deadline      *string `json:"deadline,omitempty"` // YYYY-MM-DD
	Color         string  `json:"color,omitempty"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Name          *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	TargetAmount  *float64 `json:"target_amount,omitempty" binding:"omitempty,gt=0"`
	CurrentAmount *float64 `json:"current_amount,omitempty" binding:"omitempty,gte=0"`
	Category      *string  `json:"category,omitempty"`
	Deadline      *string  `json:"deadline,omitempty"`
	ClearDeadline bool     `json:"clear_deadline,omitempty"`
	Color         *string  `json:"color,omitempty"`
}

// AddFundsRequest represents the request body for adding funds to a goal.
type AddFundsRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// GoalResponse represents a single goal with its derived progress.
type GoalResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	TargetAmount    float64   `json:"target_amount"`
	CurrentAmount   float64   `json:"current_amount"`
	Category        string    `json:"category,omitempty"`
	Deadline        *string   `json:"deadline"`
	Color           string    `json:"color"`
	Percentage      float64   `json:"percentage"`
	Remaining       float64   `json:"remaining"`
	DaysRemaining   *int      `json:"days_remaining"`
	MonthlyRequired *float64  `json:"monthly_required"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a GoalView to a GoalResponse DTO.
func ToGoalResponse(view *goal.GoalView) GoalResponse {
	g := view.Goal
	resp := GoalResponse{
		ID:            g.ID.String(),
		Name:          g.Name,
		TargetAmount:  g.TargetAmount.InexactFloat64(),
		CurrentAmount: g.CurrentAmount.InexactFloat64(),
		Category:      g.Category,
		Color:         g.Color,
		Percentage:    view.Progress.Percentage,
		Remaining:     view.Progress.Remaining.InexactFloat64(),
		DaysRemaining: view.Progress.DaysRemaining,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
	if g.Deadline != nil {
		deadline := g.Deadline.Format("2006-01-02")
		resp.Deadline = &deadline
	}
	if view.Progress.MonthlyRequired != nil {
		required := view.Progress.MonthlyRequired.InexactFloat64()
		resp.MonthlyRequired = &required
	}
	return resp
}

// ToGoalListResponse converts a list of GoalView to GoalListResponse.
func ToGoalListResponse(views []*goal.GoalView) GoalListResponse {
	goals := make([]GoalResponse, len(views))
	for i, view := range views {
		goals[i] = ToGoalResponse(view)
	}
	return GoalListResponse{Goals: goals}
}
