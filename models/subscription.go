package models

import (
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionNone       SubscriptionStatus = "none"
	SubscriptionActive     SubscriptionStatus = "active"
	SubscriptionPastDue    SubscriptionStatus = "past_due"
	SubscriptionCanceled   SubscriptionStatus = "canceled"
	SubscriptionIncomplete SubscriptionStatus = "incomplete"
)

// Subscription mirrors the billing provider's record for a user. The provider
// is the source of truth; rows here are replaced wholesale on refresh or
// webhook delivery, never edited field by field.
type Subscription struct {
	ID                uint               `json:"-" gorm:"primarykey"`
	UserID            string             `json:"-" gorm:"type:uuid;uniqueIndex;not null"`
	Status            SubscriptionStatus `json:"status" gorm:"not null;default:'none'"`
	PriceRef          *string            `json:"price_id"`
	ProductName       *string            `json:"product_name"`
	CurrentPeriodEnd  *time.Time         `json:"current_period_end"`
	CancelAtPeriodEnd bool               `json:"cancel_at_period_end"`
	CreatedAt         time.Time          `json:"-"`
	UpdatedAt         time.Time          `json:"-"`
}
