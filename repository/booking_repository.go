package repository

import (
	"errors"
	"time"

	"project/models"

	"gorm.io/gorm"
)

// BookingRepository defines the interface for interacting with booking data.
// InTransaction runs a closure against a transaction-scoped repository so the
// overlap check and the subsequent save form one atomic unit.
type BookingRepository interface {
	FindOverlapping(hotelID uint, roomNumber string, checkIn, checkOut time.Time) ([]models.Booking, error)
	FindByID(id uint) (*models.Booking, error)
	FindByHotelID(hotelID uint) ([]models.Booking, error)
	Save(booking *models.Booking) error
	InTransaction(fn func(BookingRepository) error) error
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new instance of BookingRepository.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// FindOverlapping returns the non-cancelled bookings for (hotelID, roomNumber)
// whose half-open date range intersects [checkIn, checkOut): an existing
// booking overlaps iff its check-in is before checkOut and its check-out is
// after checkIn.
func (r *bookingRepository) FindOverlapping(hotelID uint, roomNumber string, checkIn, checkOut time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.
		Where("hotel_id = ? AND room_number = ?", hotelID, roomNumber).
		Where("status <> ?", models.BookingStatusCancelled).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindByID returns (nil, nil) when the booking does not exist.
func (r *bookingRepository) FindByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByHotelID(hotelID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.
		Where("hotel_id = ?", hotelID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) Save(booking *models.Booking) error {
	return r.db.Save(booking).Error
}

func (r *bookingRepository) InTransaction(fn func(BookingRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&bookingRepository{db: tx})
	})
}
