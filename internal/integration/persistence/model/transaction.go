// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetlens/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// Transactions are hard-deleted; the category reference is weak and may
// point at a soft-deleted category.
type TransactionModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_transactions_user_date"`
	Type       string          `gorm:"type:varchar(10);not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CategoryID *uuid.UUID      `gorm:"type:uuid;index"`
	Note       string          `gorm:"type:varchar(500)"`
	Date       time.Time       `gorm:"not null;index:idx_transactions_user_date"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
	User     *UserModel     `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:         m.ID,
		UserID:     m.UserID,
		Type:       entity.TransactionType(m.Type),
		Amount:     m.Amount,
		CategoryID: m.CategoryID,
		Note:       m.Note,
		Date:       m.Date,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// ToEntityWithCategory converts a TransactionModel with its preloaded
// category. A soft-deleted category is not preloaded, so the entity reads
// back as uncategorized.
func (m *TransactionModel) ToEntityWithCategory() *entity.TransactionWithCategory {
	result := &entity.TransactionWithCategory{
		Transaction: m.ToEntity(),
	}

	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}

	return result
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:         transaction.ID,
		UserID:     transaction.UserID,
		Type:       string(transaction.Type),
		Amount:     transaction.Amount,
		CategoryID: transaction.CategoryID,
		Note:       transaction.Note,
		Date:       transaction.Date,
		CreatedAt:  transaction.CreatedAt,
		UpdatedAt:  transaction.UpdatedAt,
	}
}
