package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus defines the possible statuses for a booking.
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "PENDING"
	BookingStatusConfirmed  BookingStatus = "CONFIRMED"
	BookingStatusCheckedIn  BookingStatus = "CHECKED_IN"
	BookingStatusCheckedOut BookingStatus = "CHECKED_OUT"
	BookingStatusCancelled  BookingStatus = "CANCELLED"
)

// ParseBookingStatus maps free-text status input onto the closed status set.
// Matching is case-insensitive; anything outside the set is an error.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(strings.ToUpper(s)) {
	case BookingStatusPending:
		return BookingStatusPending, nil
	case BookingStatusConfirmed:
		return BookingStatusConfirmed, nil
	case BookingStatusCheckedIn:
		return BookingStatusCheckedIn, nil
	case BookingStatusCheckedOut:
		return BookingStatusCheckedOut, nil
	case BookingStatusCancelled:
		return BookingStatusCancelled, nil
	default:
		return "", fmt.Errorf("invalid status: %s", s)
	}
}

// Booking represents one room reservation within a hotel. RoomNumber is a
// logical slot, not a foreign key to a room entity. Check-in/check-out are
// calendar dates stored at midnight UTC; the range is half-open, so a booking
// ending on a date does not conflict with one starting on that date.
type Booking struct {
	ID           uint            `gorm:"primarykey" json:"id"`
	HotelID      uint            `gorm:"index;not null" json:"hotel_id"`
	Reference    string          `gorm:"uniqueIndex;not null" json:"reference"` // confirmation reference handed to the guest
	GuestName    string          `gorm:"not null" json:"guest_name"`
	GuestEmail   string          `json:"guest_email"`
	GuestPhone   string          `json:"guest_phone"`
	CheckInDate  time.Time       `gorm:"not null" json:"check_in_date"`
	CheckOutDate time.Time       `gorm:"not null" json:"check_out_date"`
	RoomNumber   string          `gorm:"index" json:"room_number"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_amount"`
	Status       BookingStatus   `gorm:"type:varchar(20);default:'CONFIRMED';not null" json:"status"`
	ConfirmedAt  *time.Time      `json:"confirmed_at"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Booking model.
func (Booking) TableName() string {
	return "bookings"
}
