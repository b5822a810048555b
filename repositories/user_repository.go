package repositories

import (
	"premium-blog-api/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	SetPremiumFlag(id string, premium bool) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Subscription").First(&user, "id = ?", id).Error
	return &user, err
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Subscription").First(&user, "email = ?", email).Error
	return &user, err
}

func (r *userRepository) SetPremiumFlag(id string, premium bool) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("premium_flag", premium).Error
}
