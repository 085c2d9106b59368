package dto

import (
	"time"

	"github.com/budgetlens/backend/internal/application/usecase/budget"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	CategoryID string  `json:"category_id" binding:"required,uuid"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	Month      string  `json:"month" binding:"required"` // YYYY-MM
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// BudgetResponse represents a single budget with its derived progress.
type BudgetResponse struct {
	ID            string    `json:"id"`
	CategoryID    string    `json:"category_id"`
	CategoryName  string    `json:"category_name"`
	CategoryColor string    `json:"category_color"`
	Amount        float64   `json:"amount"`
	Month         string    `json:"month"`
	Spent         float64   `json:"spent"`
	Percentage    float64   `json:"percentage"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Month   string           `json:"month"`
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a BudgetView to a BudgetResponse DTO.
func ToBudgetResponse(view *budget.BudgetView) BudgetResponse {
	return BudgetResponse{
		ID:            view.Budget.ID.String(),
		CategoryID:    view.Budget.CategoryID.String(),
		CategoryName:  view.CategoryName,
		CategoryColor: view.CategoryColor,
		Amount:        view.Budget.Amount.InexactFloat64(),
		Month:         view.Budget.Month,
		Spent:         view.Spent.InexactFloat64(),
		Percentage:    view.Percentage,
		Status:        view.Status,
		CreatedAt:     view.Budget.CreatedAt,
		UpdatedAt:     view.Budget.UpdatedAt,
	}
}

// ToBudgetListResponse converts a ListBudgetsOutput to the list response.
func ToBudgetListResponse(output *budget.ListBudgetsOutput) BudgetListResponse {
	budgets := make([]BudgetResponse, len(output.Budgets))
	for i, view := range output.Budgets {
		budgets[i] = ToBudgetResponse(view)
	}
	return BudgetListResponse{
		Month:   output.Month,
		Budgets: budgets,
	}
}
