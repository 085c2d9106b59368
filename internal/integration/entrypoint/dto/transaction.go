package dto

import (
	"time"

	"github.com/budgetlens/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type       string  `json:"type" binding:"required,oneof=expense income"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	CategoryID *string `json:"category_id,omitempty"`
	Note       string  `json:"note,omitempty" binding:"omitempty,max=500"`
	Date       string  `json:"date" binding:"required"` // YYYY-MM-DD
}

// UpdateTransactionRequest represents the request body for transaction update.
// A present-but-null category_id clears the category reference.
type UpdateTransactionRequest struct {
	Type          *string  `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Amount        *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	CategoryID    *string  `json:"category_id,omitempty"`
	ClearCategory bool     `json:"clear_category,omitempty"`
	Note          *string  `json:"note,omitempty" binding:"omitempty,max=500"`
	Date          *string  `json:"date,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
// Category is the resolved category object, or null when the transaction is
// uncategorized or its reference is dangling.
type TransactionResponse struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	Amount    float64           `json:"amount"`
	Category  *CategoryResponse `json:"category"`
	Note      string            `json:"note,omitempty"`
	Date      string            `json:"date"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// TransactionListResponse represents the paginated transaction list response.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
	TotalPages   int                   `json:"total_pages"`
}

// ToTransactionResponse converts a TransactionWithCategory to a response DTO.
func ToTransactionResponse(twc *entity.TransactionWithCategory) TransactionResponse {
	txn := twc.Transaction
	resp := TransactionResponse{
		ID:        txn.ID.String(),
		Type:      string(txn.Type),
		Amount:    txn.Amount.InexactFloat64(),
		Note:      txn.Note,
		Date:      txn.Date.Format("2006-01-02"),
		CreatedAt: txn.CreatedAt,
		UpdatedAt: txn.UpdatedAt,
	}
	if twc.Category != nil {
		cat := ToCategoryResponse(twc.Category)
		resp.Category = &cat
	}
	return resp
}

// ToTransactionListResponse converts a list result to the paginated response.
func ToTransactionListResponse(result *entity.TransactionListResult) TransactionListResponse {
	transactions := make([]TransactionResponse, len(result.Transactions))
	for i, twc := range result.Transactions {
		transactions[i] = ToTransactionResponse(twc)
	}
	return TransactionListResponse{
		Transactions: transactions,
		Total:        result.Total,
		Page:         result.Page,
		Limit:        result.Limit,
		TotalPages:   result.TotalPages,
	}
}
