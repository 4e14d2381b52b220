package services

import (
	"testing"

	"project/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRoomTypeRepository is a mock type for the RoomTypeRepository interface
type MockRoomTypeRepository struct {
	mock.Mock
}

func (m *MockRoomTypeRepository) FindByHotelID(hotelID uint) ([]models.RoomType, error) {
	args := m.Called(hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RoomType), args.Error(1)
}

func (m *MockRoomTypeRepository) Create(roomType *models.RoomType) error {
	args := m.Called(roomType)
	return args.Error(0)
}

func TestGetHotel_Success(t *testing.T) {
	hotelRepo := new(MockHotelRepository)
	roomTypeRepo := new(MockRoomTypeRepository)
	svc := NewHotelService(hotelRepo, roomTypeRepo)

	hotelRepo.On("FindByID", uint(1)).Return(&models.Hotel{ID: 1, Name: "Grand Plaza Hotel"}, nil)

	hotel, err := svc.GetHotel(1)

	assert.NoError(t, err)
	assert.Equal(t, "Grand Plaza Hotel", hotel.Name)
}

func TestGetHotel_NotFound(t *testing.T) {
	hotelRepo := new(MockHotelRepository)
	roomTypeRepo := new(MockRoomTypeRepository)
	svc := NewHotelService(hotelRepo, roomTypeRepo)

	hotelRepo.On("FindByID", uint(99)).Return(nil, nil)

	_, err := svc.GetHotel(99)

	assert.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestGetRoomTypes_Success(t *testing.T) {
	hotelRepo := new(MockHotelRepository)
	roomTypeRepo := new(MockRoomTypeRepository)
	svc := NewHotelService(hotelRepo, roomTypeRepo)

	hotelRepo.On("ExistsByID", uint(1)).Return(true, nil)
	roomTypeRepo.On("FindByHotelID", uint(1)).Return([]models.RoomType{
		{Name: "Standard"}, {Name: "Deluxe"},
	}, nil)

	roomTypes, err := svc.GetRoomTypes(1)

	assert.NoError(t, err)
	assert.Len(t, roomTypes, 2)
}

func TestGetRoomTypes_HotelNotFound(t *testing.T) {
	hotelRepo := new(MockHotelRepository)
	roomTypeRepo := new(MockRoomTypeRepository)
	svc := NewHotelService(hotelRepo, roomTypeRepo)

	hotelRepo.On("ExistsByID", uint(99)).Return(false, nil)

	_, err := svc.GetRoomTypes(99)

	assert.Error(t, err)
	assert.True(t, IsNotFound(err))
	roomTypeRepo.AssertNotCalled(t, "FindByHotelID", mock.Anything)
}
