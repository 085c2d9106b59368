// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a financial transaction in the BudgetLens system.
// Amount is always positive; Type distinguishes income from expense.
type Transaction struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Type       TransactionType
	Amount     decimal.Decimal
	CategoryID *uuid.UUID // Optional weak reference, can be uncategorized
	Note       string
	Date       time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	transactionType TransactionType,
	amount decimal.Decimal,
	categoryID *uuid.UUID,
	note string,
	date time.Time,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:         uuid.New(),
		UserID:     userID,
		Type:       transactionType,
		Amount:     amount,
		CategoryID: categoryID,
		Note:       note,
		Date:       date,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// TransactionWithCategory represents a transaction with its resolved category.
// Category is nil when the transaction is uncategorized or the reference is dangling.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}

// TransactionListResult represents the result of listing transactions.
type TransactionListResult struct {
	Transactions []*TransactionWithCategory
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}
