package repository

import (
	"project/models"

	"gorm.io/gorm"
)

// RoomTypeRepository defines the interface for interacting with room type
// reference data.
type RoomTypeRepository interface {
	FindByHotelID(hotelID uint) ([]models.RoomType, error)
	Create(roomType *models.RoomType) error
}

type roomTypeRepository struct {
	db *gorm.DB
}

// NewRoomTypeRepository creates a new instance of RoomTypeRepository.
func NewRoomTypeRepository(db *gorm.DB) RoomTypeRepository {
	return &roomTypeRepository{db: db}
}

func (r *roomTypeRepository) FindByHotelID(hotelID uint) ([]models.RoomType, error) {
	var roomTypes []models.RoomType
	err := r.db.
		Where("hotel_id = ? AND is_active = ?", hotelID, true).
		Order("base_price ASC").
		Find(&roomTypes).Error
	if err != nil {
		return nil, err
	}
	return roomTypes, nil
}

func (r *roomTypeRepository) Create(roomType *models.RoomType) error {
	return r.db.Create(roomType).Error
}
