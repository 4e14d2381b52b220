package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoomType describes a category of rooms a hotel offers. It is reference
// data for the receptionist; bookings point at free-form room numbers, not
// at room types.
type RoomType struct {
	ID           uint            `gorm:"primarykey" json:"id"`
	HotelID      uint            `gorm:"index;not null" json:"hotel_id"`
	Name         string          `gorm:"not null" json:"name"`
	Description  string          `gorm:"type:text" json:"description"`
	BasePrice    decimal.Decimal `gorm:"type:decimal(10,2)" json:"base_price"`
	MaxOccupancy int             `json:"max_occupancy"`
	TotalRooms   int             `json:"total_rooms"`
	IsActive     bool            `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the RoomType model.
func (RoomType) TableName() string {
	return "room_types"
}
