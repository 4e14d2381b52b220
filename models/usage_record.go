package models

import "time"

// UsageStatus defines the lifecycle states of a usage session.
// The transition is one-way: ACTIVE -> COMPLETED.
type UsageStatus string

const (
	UsageStatusActive    UsageStatus = "ACTIVE"
	UsageStatusCompleted UsageStatus = "COMPLETED"
)

// UsageRecord tracks one AI-receptionist call for a hotel. SessionID is
// supplied by the caller and unique across all hotels; token counters only
// grow while the session is ACTIVE.
type UsageRecord struct {
	ID              uint        `gorm:"primarykey" json:"id"`
	HotelID         uint        `gorm:"index;not null" json:"hotel_id"`
	SessionID       string      `gorm:"uniqueIndex;not null" json:"session_id"`
	CallStartTime   *time.Time  `json:"call_start_time"`
	CallEndTime     *time.Time  `json:"call_end_time"`
	DurationSeconds *int64      `json:"duration_seconds"`
	InputTokens     int         `gorm:"default:0" json:"input_tokens"`
	OutputTokens    int         `gorm:"default:0" json:"output_tokens"`
	TotalTokens     int         `gorm:"default:0" json:"total_tokens"`
	BookingAttempts int         `gorm:"default:0" json:"booking_attempts"`
	Status          UsageStatus `gorm:"type:varchar(20);default:'ACTIVE';not null" json:"status"`
	CreatedAt       time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the UsageRecord model.
func (UsageRecord) TableName() string {
	return "usage_records"
}
