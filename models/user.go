package models

import "time"

// UserRole defines the possible roles for an admin user.
type UserRole string

const (
	RoleSuperAdmin UserRole = "SUPER_ADMIN"
	RoleHotelAdmin UserRole = "HOTEL_ADMIN"
)

// User is a dashboard/admin account. Hotel admins are scoped to one hotel.
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	HotelID   uint      `gorm:"index" json:"hotel_id"`
	Role      UserRole  `gorm:"type:varchar(20);default:'HOTEL_ADMIN';not null" json:"role"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}
