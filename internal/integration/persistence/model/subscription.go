// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/budgetlens/backend/internal/domain/entity"
)

// SubscriptionPlanModel represents the subscription_plans table in the database.
type SubscriptionPlanModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Description string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the SubscriptionPlanModel.
func (SubscriptionPlanModel) TableName() string {
	return "subscription_plans"
}

// ToEntity converts a SubscriptionPlanModel to a domain entity.
func (m *SubscriptionPlanModel) ToEntity() *entity.SubscriptionPlan {
	return &entity.SubscriptionPlan{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// SubscriptionPlanFromEntity creates a SubscriptionPlanModel from a domain entity.
func SubscriptionPlanFromEntity(plan *entity.SubscriptionPlan) *SubscriptionPlanModel {
	return &SubscriptionPlanModel{
		ID:          plan.ID,
		Name:        plan.Name,
		Description: plan.Description,
		CreatedAt:   plan.CreatedAt,
		UpdatedAt:   plan.UpdatedAt,
	}
}

// UserSubscriptionModel represents the user_subscriptions table in the database.
type UserSubscriptionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanID    uuid.UUID `gorm:"type:uuid;not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Plan *SubscriptionPlanModel `gorm:"foreignKey:PlanID;references:ID"`
}

// TableName returns the table name for the UserSubscriptionModel.
func (UserSubscriptionModel) TableName() string {
	return "user_subscriptions"
}

// ToEntity converts a UserSubscriptionModel to a domain entity.
func (m *UserSubscriptionModel) ToEntity() *entity.UserSubscription {
	return &entity.UserSubscription{
		ID:        m.ID,
		UserID:    m.UserID,
		PlanID:    m.PlanID,
		Status:    entity.SubscriptionStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// UserSubscriptionFromEntity creates a UserSubscriptionModel from a domain entity.
func UserSubscriptionFromEntity(subscription *entity.UserSubscription) *UserSubscriptionModel {
	return &UserSubscriptionModel{
		ID:        subscription.ID,
		UserID:    subscription.UserID,
		PlanID:    subscription.PlanID,
		Status:    string(subscription.Status),
		CreatedAt: subscription.CreatedAt,
		UpdatedAt: subscription.UpdatedAt,
	}
}
