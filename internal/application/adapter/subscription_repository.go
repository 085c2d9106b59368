// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetlens/backend/internal/domain/entity"
)

// SubscriptionRepository defines the interface for subscription persistence operations.
type SubscriptionRepository interface {
	// EnsurePlan creates the plan if it does not exist and returns the stored row.
	EnsurePlan(ctx context.Context, plan *entity.SubscriptionPlan) (*entity.SubscriptionPlan, error)

	// FindPlanByName retrieves a plan by its unique name.
	FindPlanByName(ctx context.Context, name string) (*entity.SubscriptionPlan, error)

	// CreateUserSubscription attaches a subscription to a user.
	CreateUserSubscription(ctx context.Context, subscription *entity.UserSubscription) error

	// HasActiveSubscription checks whether the user already has an active subscription.
	HasActiveSubscription(ctx context.Context, userID uuid.UUID) (bool, error)
}
