package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           string         `json:"id" gorm:"type:uuid;primarykey"`
	Username     string         `json:"username" gorm:"uniqueIndex;not null"`
	Email        string         `json:"email" gorm:"uniqueIndex;not null"`
	Password     string         `json:"-" gorm:"not null"`
	PremiumFlag  bool           `json:"is_premium" gorm:"not null;default:false"`
	Subscription *Subscription  `json:"subscription,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// IsEntitled is the single entitlement derivation used everywhere:
// the premium flag or an active subscription grants premium access.
func (u *User) IsEntitled() bool {
	if u == nil {
		return false
	}
	if u.PremiumFlag {
		return true
	}
	return u.Subscription != nil && u.Subscription.Status == SubscriptionActive
}
