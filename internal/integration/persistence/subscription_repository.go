// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budgetlens/backend/internal/application/adapter"
	"github.com/budgetlens/backend/internal/domain/entity"
	"github.com/budgetlens/backend/internal/integration/persistence/model"
)

// subscriptionRepository implements the adapter.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository instance.
func NewSubscriptionRepository(db *gorm.DB) adapter.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// EnsurePlan creates the plan if it does not exist and returns the stored row.
// Races on the unique plan name resolve to the existing row.
func (r *subscriptionRepository) EnsurePlan(ctx context.Context, plan *entity.SubscriptionPlan) (*entity.SubscriptionPlan, error) {
	existing, err := r.FindPlanByName(ctx, plan.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	planModel := model.SubscriptionPlanFromEntity(plan)
	result := r.db.WithContext(ctx).Create(planModel)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return r.FindPlanByName(ctx, plan.Name)
		}
		return nil, result.Error
	}
	return plan, nil
}

// FindPlanByName retrieves a plan by its unique name. Returns nil when absent.
func (r *subscriptionRepository) FindPlanByName(ctx context.Context, name string) (*entity.SubscriptionPlan, error) {
	var planModel model.SubscriptionPlanModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&planModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return planModel.ToEntity(), nil
}

// CreateUserSubscription attaches a subscription to a user.
func (r *subscriptionRepository) CreateUserSubscription(ctx context.Context, subscription *entity.UserSubscription) error {
	subscriptionModel := model.UserSubscriptionFromEntity(subscription)
	result := r.db.WithContext(ctx).Create(subscriptionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// HasActiveSubscription checks whether the user has an active subscription.
func (r *subscriptionRepository) HasActiveSubscription(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.UserSubscriptionModel{}).
		Where("user_id = ? AND status = ?", userID, string(entity.SubscriptionStatusActive)).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
