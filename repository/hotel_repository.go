package repository

import (
	"errors"

	"project/models"

	"gorm.io/gorm"
)

// HotelRepository defines the interface for reading hotel data. Hotels are
// provisioned outside the request path, so the read side is all the services
// need; Create and Count exist for the dev seeder.
type HotelRepository interface {
	ExistsByID(id uint) (bool, error)
	FindByID(id uint) (*models.Hotel, error)
	Create(hotel *models.Hotel) error
	Count() (int64, error)
}

type hotelRepository struct {
	db *gorm.DB
}

// NewHotelRepository creates a new instance of HotelRepository.
func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Hotel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByID returns (nil, nil) when the hotel does not exist; callers decide
// whether absence is an error.
func (r *hotelRepository) FindByID(id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	err := r.db.First(&hotel, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hotel, nil
}

func (r *hotelRepository) Create(hotel *models.Hotel) error {
	return r.db.Create(hotel).Error
}

func (r *hotelRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Hotel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
