// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/budgetlens/backend/internal/application/adapter"
	"github.com/budgetlens/backend/internal/domain/entity"
)

// defaultCategory describes one category provisioned for new users.
type defaultCategory struct {
	Name  string
	Type  entity.CategoryType
	Icon  string
	Color string
}

// defaultCategories are created for every new user.
var defaultCategories = []defaultCategory{
	{Name: "Food & Dining", Type: entity.CategoryTypeExpense, Icon: "utensils", Color: "#ef4444"},
	{Name: "Transportation", Type: entity.CategoryTypeExpense, Icon: "car", Color: "#3b82f6"},
	{Name: "Shopping", Type: entity.CategoryTypeExpense, Icon: "shopping-bag", Color: "#ec4899"},
	{Name: "Bills & Utilities", Type: entity.CategoryTypeExpense, Icon: "bolt", Color: "#f59e0b"},
	{Name: "Entertainment", Type: entity.CategoryTypeExpense, Icon: "film", Color: "#8b5cf6"},
	{Name: "Salary", Type: entity.CategoryTypeIncome, Icon: "wallet", Color: "#10b981"},
	{Name: "Freelance", Type: entity.CategoryTypeIncome, Icon: "briefcase", Color: "#10b981"},
	{Name: "Investment", Type: entity.CategoryTypeIncome, Icon: "chart-line", Color: "#10b981"},
}

// ProvisionUserInput represents the input for user provisioning.
type ProvisionUserInput struct {
	UserID uuid.UUID
}

// ProvisionUserUseCase sets up a user's starting state: the default category
// set and an active free-tier subscription. The operation is idempotent, so
// it is safe to invoke on every registration or first-login sync.
type ProvisionUserUseCase struct {
	categoryRepo     adapter.CategoryRepository
	subscriptionRepo adapter.SubscriptionRepository
}

// NewProvisionUserUseCase creates a new ProvisionUserUseCase instance.
func NewProvisionUserUseCase(
	categoryRepo adapter.CategoryRepository,
	subscriptionRepo adapter.SubscriptionRepository,
) *ProvisionUserUseCase {
	return &ProvisionUserUseCase{
		categoryRepo:     categoryRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// Execute provisions the user. Users who already have categories or an active
// subscription keep what they have.
func (uc *ProvisionUserUseCase) Execute(ctx context.Context, input ProvisionUserInput) error {
	count, err := uc.categoryRepo.CountByUser(ctx, input.UserID)
	if err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count == 0 {
		for _, dc := range defaultCategories {
			category := entity.NewCategory(input.UserID, dc.Name, dc.Type, dc.Icon, dc.Color)
			if err := uc.categoryRepo.Create(ctx, category); err != nil {
				// A concurrent provisioning call may have won; the unique
				// index makes the duplicate harmless.
				slog.Warn("Skipping default category", "name", dc.Name, "user_id", input.UserID, "error", err)
			}
		}
	}

	hasSubscription, err := uc.subscriptionRepo.HasActiveSubscription(ctx, input.UserID)
	if err != nil {
		return fmt.Errorf("failed to check subscription: %w", err)
	}
	if !hasSubscription {
		plan, err := uc.subscriptionRepo.FindPlanByName(ctx, entity.FreePlanName)
		if err != nil {
			return fmt.Errorf("failed to find free plan: %w", err)
		}
		if plan == nil {
			slog.Warn("Free plan not seeded, skipping subscription provisioning", "user_id", input.UserID)
			return nil
		}
		subscription := entity.NewUserSubscription(input.UserID, plan.ID)
		if err := uc.subscriptionRepo.CreateUserSubscription(ctx, subscription); err != nil {
			return fmt.Errorf("failed to create subscription: %w", err)
		}
	}

	return nil
}
