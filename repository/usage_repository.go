package repository

import (
	"errors"
	"time"

	"project/models"

	"gorm.io/gorm"
)

// UsageRecordRepository defines the interface for interacting with usage
// session data. SessionID carries a unique index, so duplicate session starts
// are rejected by the store even when two requests race past the existence
// check.
type UsageRecordRepository interface {
	FindBySessionID(sessionID string) (*models.UsageRecord, error)
	ExistsBySessionID(sessionID string) (bool, error)
	Save(record *models.UsageRecord) error
	SumTotalTokensSince(hotelID uint, since time.Time) (int, error)
	InTransaction(fn func(UsageRecordRepository) error) error
}

type usageRecordRepository struct {
	db *gorm.DB
}

// NewUsageRecordRepository creates a new instance of UsageRecordRepository.
func NewUsageRecordRepository(db *gorm.DB) UsageRecordRepository {
	return &usageRecordRepository{db: db}
}

// FindBySessionID returns (nil, nil) when no record carries the session id.
func (r *usageRecordRepository) FindBySessionID(sessionID string) (*models.UsageRecord, error) {
	var record models.UsageRecord
	err := r.db.Where("session_id = ?", sessionID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *usageRecordRepository) ExistsBySessionID(sessionID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.UsageRecord{}).Where("session_id = ?", sessionID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *usageRecordRepository) Save(record *models.UsageRecord) error {
	return r.db.Save(record).Error
}

// SumTotalTokensSince aggregates total_tokens over all of a hotel's usage
// records whose call started on or after the given instant, 0 when none do.
func (r *usageRecordRepository) SumTotalTokensSince(hotelID uint, since time.Time) (int, error) {
	var total int64
	err := r.db.Model(&models.UsageRecord{}).
		Where("hotel_id = ? AND call_start_time >= ?", hotelID, since).
		Select("COALESCE(SUM(total_tokens), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return int(total), nil
}

func (r *usageRecordRepository) InTransaction(fn func(UsageRecordRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&usageRecordRepository{db: tx})
	})
}
