package repositories

import (
	"errors"

	"premium-blog-api/models"

	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	GetByUserID(userID string) (*models.Subscription, error)
	// Upsert replaces the user's mirror row wholesale. The billing provider
	// is the source of truth, so last write wins.
	Upsert(sub *models.Subscription) error
	DeleteByUserID(userID string) error
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) GetByUserID(userID string) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.First(&sub, "user_id = ?", userID).Error
	return &sub, err
}

func (r *subscriptionRepository) Upsert(sub *models.Subscription) error {
	var existing models.Subscription
	err := r.db.First(&existing, "user_id = ?", sub.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(sub).Error
	}
	if err != nil {
		return err
	}

	sub.ID = existing.ID
	sub.CreatedAt = existing.CreatedAt
	return r.db.Save(sub).Error
}

func (r *subscriptionRepository) DeleteByUserID(userID string) error {
	return r.db.Delete(&models.Subscription{}, "user_id = ?", userID).Error
}
