package services

import (
	"fmt"
	"log"
	"time"

	"project/models"
	"project/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AvailabilityResult is the outcome of a side-effect-free availability check.
type AvailabilityResult struct {
	Available  bool   `json:"available"`
	HotelID    uint   `json:"hotel_id"`
	RoomNumber string `json:"room_number"`
	Message    string `json:"message"`
}

// CreateBookingInput carries the validated values for a new booking.
type CreateBookingInput struct {
	HotelID      uint
	GuestName    string
	GuestEmail   string
	GuestPhone   string
	CheckInDate  time.Time
	CheckOutDate time.Time
	RoomNumber   string
	TotalAmount  decimal.Decimal
}

// ModifyBookingInput carries partial updates for an existing booking. Nil
// fields are left untouched.
type ModifyBookingInput struct {
	GuestName    *string
	GuestEmail   *string
	GuestPhone   *string
	CheckInDate  *time.Time
	CheckOutDate *time.Time
	TotalAmount  *decimal.Decimal
	Status       *string
}

// BookingService owns room-reservation records: availability queries plus
// create/modify/cancel/list. The invariant it maintains: for a given
// (hotel, room number), no two non-cancelled bookings overlap.
type BookingService interface {
	CheckAvailability(hotelID uint, roomNumber string, checkIn, checkOut time.Time) (*AvailabilityResult, error)
	CreateBooking(input CreateBookingInput) (*models.Booking, error)
	ModifyBooking(id uint, input ModifyBookingInput) (*models.Booking, error)
	CancelBooking(id uint) error
	GetBookingsByHotel(hotelID uint) ([]models.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	hotelRepo   repository.HotelRepository
}

// NewBookingService creates a new instance of BookingService.
func NewBookingService(bookingRepo repository.BookingRepository, hotelRepo repository.HotelRepository) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		hotelRepo:   hotelRepo,
	}
}

// NormalizeDate truncates a timestamp to its calendar date at midnight UTC.
// Booking ranges are date-granular; times never participate in the overlap
// test.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CheckAvailability reports whether (hotelID, roomNumber) is free for the
// half-open range [checkIn, checkOut). Read-only.
func (s *bookingService) CheckAvailability(hotelID uint, roomNumber string, checkIn, checkOut time.Time) (*AvailabilityResult, error) {
	if err := s.validateHotelExists(hotelID); err != nil {
		return nil, err
	}
	checkIn, checkOut = NormalizeDate(checkIn), NormalizeDate(checkOut)
	if err := validateDateOrder(checkIn, checkOut); err != nil {
		return nil, err
	}

	overlapping, err := s.bookingRepo.FindOverlapping(hotelID, roomNumber, checkIn, checkOut)
	if err != nil {
		return nil, fmt.Errorf("find overlapping bookings: %w", err)
	}

	result := &AvailabilityResult{
		Available:  len(overlapping) == 0,
		HotelID:    hotelID,
		RoomNumber: roomNumber,
	}
	if result.Available {
		result.Message = "Room is available"
	} else {
		result.Message = "Room is not available for selected dates"
	}
	return result, nil
}

// CreateBooking persists a new CONFIRMED booking. The overlap check and the
// insert run in one transaction so no concurrent request can take the same
// (hotel, room, range).
func (s *bookingService) CreateBooking(input CreateBookingInput) (*models.Booking, error) {
	if err := s.validateHotelExists(input.HotelID); err != nil {
		return nil, err
	}
	checkIn, checkOut := NormalizeDate(input.CheckInDate), NormalizeDate(input.CheckOutDate)
	if err := validateDateOrder(checkIn, checkOut); err != nil {
		return nil, err
	}
	if err := validateNotInPast(checkIn); err != nil {
		return nil, err
	}

	var booking *models.Booking
	err := s.bookingRepo.InTransaction(func(repo repository.BookingRepository) error {
		overlapping, err := repo.FindOverlapping(input.HotelID, input.RoomNumber, checkIn, checkOut)
		if err != nil {
			return fmt.Errorf("find overlapping bookings: %w", err)
		}
		if len(overlapping) > 0 {
			return NewRoomUnavailableError(fmt.Sprintf("Room %s is already booked for the selected dates", input.RoomNumber))
		}

		now := time.Now()
		booking = &models.Booking{
			HotelID:      input.HotelID,
			Reference:    uuid.NewString(),
			GuestName:    input.GuestName,
			GuestEmail:   input.GuestEmail,
			GuestPhone:   input.GuestPhone,
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			RoomNumber:   input.RoomNumber,
			TotalAmount:  input.TotalAmount,
			Status:       models.BookingStatusConfirmed,
			ConfirmedAt:  &now,
		}
		return repo.Save(booking)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("INFO: [BookingService] Created booking ID %d (room %s, hotel %d).", booking.ID, booking.RoomNumber, booking.HotelID)
	return booking, nil
}

// ModifyBooking applies partial updates. The overlap check re-runs only when
// the effective date range actually changes, and then excludes the booking's
// own id; status-only or guest-only edits never touch it.
func (s *bookingService) ModifyBooking(id uint, input ModifyBookingInput) (*models.Booking, error) {
	var booking *models.Booking
	err := s.bookingRepo.InTransaction(func(repo repository.BookingRepository) error {
		found, err := repo.FindByID(id)
		if err != nil {
			return fmt.Errorf("find booking: %w", err)
		}
		if found == nil {
			return NewNotFoundError("Booking", "id", id)
		}
		booking = found

		if input.GuestName != nil {
			booking.GuestName = *input.GuestName
		}
		if input.GuestEmail != nil {
			booking.GuestEmail = *input.GuestEmail
		}
		if input.GuestPhone != nil {
			booking.GuestPhone = *input.GuestPhone
		}
		if input.TotalAmount != nil {
			booking.TotalAmount = *input.TotalAmount
		}

		if input.CheckInDate != nil || input.CheckOutDate != nil {
			newCheckIn, newCheckOut := booking.CheckInDate, booking.CheckOutDate
			if input.CheckInDate != nil {
				newCheckIn = NormalizeDate(*input.CheckInDate)
			}
			if input.CheckOutDate != nil {
				newCheckOut = NormalizeDate(*input.CheckOutDate)
			}

			if err := validateDateOrder(newCheckIn, newCheckOut); err != nil {
				return err
			}
			if err := validateNotInPast(newCheckIn); err != nil {
				return err
			}

			if !newCheckIn.Equal(booking.CheckInDate) || !newCheckOut.Equal(booking.CheckOutDate) {
				overlapping, err := repo.FindOverlapping(booking.HotelID, booking.RoomNumber, newCheckIn, newCheckOut)
				if err != nil {
					return fmt.Errorf("find overlapping bookings: %w", err)
				}
				for _, other := range overlapping {
					if other.ID != id {
						return NewRoomUnavailableError("Room is already booked for the new dates")
					}
				}
				booking.CheckInDate = newCheckIn
				booking.CheckOutDate = newCheckOut
			}
		}

		if input.Status != nil {
			status, err := models.ParseBookingStatus(*input.Status)
			if err != nil {
				return NewValidationError(err.Error())
			}
			booking.Status = status
		}

		return repo.Save(booking)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("INFO: [BookingService] Modified booking ID %d.", booking.ID)
	return booking, nil
}

// CancelBooking sets status CANCELLED unconditionally: any found booking is
// cancellable, whatever state it is in, and re-cancelling succeeds silently.
func (s *bookingService) CancelBooking(id uint) error {
	booking, err := s.bookingRepo.FindByID(id)
	if err != nil {
		return fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return NewNotFoundError("Booking", "id", id)
	}

	booking.Status = models.BookingStatusCancelled
	if err := s.bookingRepo.Save(booking); err != nil {
		return fmt.Errorf("save cancelled booking: %w", err)
	}

	log.Printf("INFO: [BookingService] Cancelled booking ID %d.", id)
	return nil
}

// GetBookingsByHotel lists a hotel's bookings, newest created first.
func (s *bookingService) GetBookingsByHotel(hotelID uint) ([]models.Booking, error) {
	if err := s.validateHotelExists(hotelID); err != nil {
		return nil, err
	}
	bookings, err := s.bookingRepo.FindByHotelID(hotelID)
	if err != nil {
		return nil, fmt.Errorf("find bookings by hotel: %w", err)
	}
	return bookings, nil
}

func (s *bookingService) validateHotelExists(hotelID uint) error {
	exists, err := s.hotelRepo.ExistsByID(hotelID)
	if err != nil {
		return fmt.Errorf("check hotel exists: %w", err)
	}
	if !exists {
		return NewNotFoundError("Hotel", "id", hotelID)
	}
	return nil
}

func validateDateOrder(checkIn, checkOut time.Time) error {
	if !checkOut.After(checkIn) {
		return NewValidationError("Check-out date must be after check-in date")
	}
	return nil
}

func validateNotInPast(date time.Time) error {
	if date.Before(NormalizeDate(time.Now())) {
		return NewValidationError("Cannot book dates in the past")
	}
	return nil
}
