package repository

import (
	"errors"

	"project/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for interacting with admin user data.
type UserRepository interface {
	FindByEmail(email string) (*models.User, error)
	ExistsByEmail(email string) (bool, error)
	Create(user *models.User) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByEmail returns (nil, nil) when no user carries the email.
func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}
