package services

import (
	"fmt"

	"project/models"
	"project/repository"
)

// HotelService exposes the hotel registry read side: hotel identity and the
// room-type reference data the receptionist quotes from.
type HotelService interface {
	GetHotel(hotelID uint) (*models.Hotel, error)
	GetRoomTypes(hotelID uint) ([]models.RoomType, error)
}

type hotelService struct {
	hotelRepo    repository.HotelRepository
	roomTypeRepo repository.RoomTypeRepository
}

// NewHotelService creates a new instance of HotelService.
func NewHotelService(hotelRepo repository.HotelRepository, roomTypeRepo repository.RoomTypeRepository) HotelService {
	return &hotelService{
		hotelRepo:    hotelRepo,
		roomTypeRepo: roomTypeRepo,
	}
}

func (s *hotelService) GetHotel(hotelID uint) (*models.Hotel, error) {
	hotel, err := s.hotelRepo.FindByID(hotelID)
	if err != nil {
		return nil, fmt.Errorf("find hotel: %w", err)
	}
	if hotel == nil {
		return nil, NewNotFoundError("Hotel", "id", hotelID)
	}
	return hotel, nil
}

func (s *hotelService) GetRoomTypes(hotelID uint) ([]models.RoomType, error) {
	exists, err := s.hotelRepo.ExistsByID(hotelID)
	if err != nil {
		return nil, fmt.Errorf("check hotel exists: %w", err)
	}
	if !exists {
		return nil, NewNotFoundError("Hotel", "id", hotelID)
	}
	roomTypes, err := s.roomTypeRepo.FindByHotelID(hotelID)
	if err != nil {
		return nil, fmt.Errorf("find room types: %w", err)
	}
	return roomTypes, nil
}
