package models

import "time"

// Hotel is the quota authority. Bookings and usage records reference it by ID
// only; the core logic never mutates a hotel.
type Hotel struct {
	ID                uint      `gorm:"primarykey" json:"id"`
	Name              string    `gorm:"not null" json:"name"`
	Address           string    `json:"address"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email"`
	IsActive          bool      `gorm:"default:true" json:"is_active"`
	MonthlyTokenLimit int       `gorm:"default:100000" json:"monthly_token_limit"` // tokens per calendar month
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Hotel model.
func (Hotel) TableName() string {
	return "hotels"
}
