// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetlens/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget. The (user, category, month) uniqueness
	// constraint is enforced by the store; a violation is reported as
	// domainerror.ErrBudgetAlreadyExists.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByUserAndMonth retrieves all budgets for a user and month with
	// categories resolved. Category is nil for dangling references.
	FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month string) ([]*entity.BudgetWithCategory, error)

	// Update updates an existing budget in the database.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
