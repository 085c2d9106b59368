// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// FreePlanName is the name of the subscription plan new users are placed on.
const FreePlanName = "Free"

// SubscriptionStatus represents the status of a user's subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
)

// SubscriptionPlan represents a billing tier.
type SubscriptionPlan struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewSubscriptionPlan creates a new SubscriptionPlan entity.
func NewSubscriptionPlan(name, description string) *SubscriptionPlan {
	now := time.Now().UTC()
	return &SubscriptionPlan{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UserSubscription links a user to a subscription plan.
type UserSubscription struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	PlanID    uuid.UUID
	Status    SubscriptionStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUserSubscription creates an active subscription for a user on the given plan.
func NewUserSubscription(userID, planID uuid.UUID) *UserSubscription {
	now := time.Now().UTC()
	return &UserSubscription{
		ID:        uuid.New(),
		UserID:    userID,
		PlanID:    planID,
		Status:    SubscriptionStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
