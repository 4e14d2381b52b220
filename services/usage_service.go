package services

import (
	"fmt"
	"log"
	"time"

	"project/models"
	"project/repository"
)

// UsageService owns per-call usage sessions and enforces each hotel's
// monthly token cap. A session moves ACTIVE -> COMPLETED exactly once;
// counters only accumulate while it is ACTIVE.
type UsageService interface {
	StartSession(hotelID uint, sessionID string) (*models.UsageRecord, error)
	UpdateTokenUsage(sessionID string, inputTokens, outputTokens int) (*models.UsageRecord, error)
	IncrementBookingAttempt(sessionID string) (*models.UsageRecord, error)
	EndSession(sessionID string) (*models.UsageRecord, error)
	GetCurrentMonthTokenUsage(hotelID uint) (int, error)
}

type usageService struct {
	usageRepo repository.UsageRecordRepository
	hotelRepo repository.HotelRepository
}

// NewUsageService creates a new instance of UsageService.
func NewUsageService(usageRepo repository.UsageRecordRepository, hotelRepo repository.HotelRepository) UsageService {
	return &usageService{
		usageRepo: usageRepo,
		hotelRepo: hotelRepo,
	}
}

// StartSession records a new ACTIVE session with zeroed counters. Session ids
// are unique across all hotels, permanently: a completed session still blocks
// reuse of its id.
func (s *usageService) StartSession(hotelID uint, sessionID string) (*models.UsageRecord, error) {
	if err := s.validateHotelExists(hotelID); err != nil {
		return nil, err
	}

	var record *models.UsageRecord
	err := s.usageRepo.InTransaction(func(repo repository.UsageRecordRepository) error {
		exists, err := repo.ExistsBySessionID(sessionID)
		if err != nil {
			return fmt.Errorf("check session exists: %w", err)
		}
		if exists {
			return NewConflictError(fmt.Sprintf("Session ID %s already exists", sessionID))
		}

		now := time.Now()
		record = &models.UsageRecord{
			HotelID:       hotelID,
			SessionID:     sessionID,
			CallStartTime: &now,
			Status:        models.UsageStatusActive,
		}
		return repo.Save(record)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("INFO: [UsageService] Started session %s for hotel %d.", sessionID, hotelID)
	return record, nil
}

// UpdateTokenUsage accumulates tokens onto an ACTIVE session, but only when
// the hotel's already-committed current-month consumption plus the new
// increment stays within its monthly limit. Landing exactly on the limit is
// allowed; the record is untouched when the check fails.
func (s *usageService) UpdateTokenUsage(sessionID string, inputTokens, outputTokens int) (*models.UsageRecord, error) {
	if inputTokens < 0 || outputTokens < 0 {
		return nil, NewValidationError("Token counts must not be negative")
	}

	var record *models.UsageRecord
	err := s.usageRepo.InTransaction(func(repo repository.UsageRecordRepository) error {
		found, err := repo.FindBySessionID(sessionID)
		if err != nil {
			return fmt.Errorf("find usage record: %w", err)
		}
		if found == nil {
			return NewNotFoundError("Usage record", "sessionId", sessionID)
		}
		record = found

		if record.Status == models.UsageStatusCompleted {
			return NewInvalidStateError("Cannot update completed session")
		}

		newTokens := inputTokens + outputTokens
		currentMonthUsage, err := repo.SumTotalTokensSince(record.HotelID, startOfCurrentMonth())
		if err != nil {
			return fmt.Errorf("sum current month usage: %w", err)
		}

		hotel, err := s.hotelRepo.FindByID(record.HotelID)
		if err != nil {
			return fmt.Errorf("find hotel: %w", err)
		}
		if hotel == nil {
			return NewNotFoundError("Hotel", "id", record.HotelID)
		}

		if currentMonthUsage+newTokens > hotel.MonthlyTokenLimit {
			return NewQuotaExceededError(fmt.Sprintf("Hotel %d has reached its monthly limit of %d tokens", hotel.ID, hotel.MonthlyTokenLimit))
		}

		record.InputTokens += inputTokens
		record.OutputTokens += outputTokens
		record.TotalTokens += newTokens
		return repo.Save(record)
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// IncrementBookingAttempt bumps the session's booking-attempt counter.
// Attempts are not token usage, so the quota gate does not apply.
func (s *usageService) IncrementBookingAttempt(sessionID string) (*models.UsageRecord, error) {
	record, err := s.findActiveSession(sessionID)
	if err != nil {
		return nil, err
	}

	record.BookingAttempts++
	if err := s.usageRepo.Save(record); err != nil {
		return nil, fmt.Errorf("save usage record: %w", err)
	}
	return record, nil
}

// EndSession marks the session COMPLETED and derives its duration in whole
// seconds. Re-ending a completed session is allowed and simply overwrites
// the end time and duration.
func (s *usageService) EndSession(sessionID string) (*models.UsageRecord, error) {
	record, err := s.usageRepo.FindBySessionID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("find usage record: %w", err)
	}
	if record == nil {
		return nil, NewNotFoundError("Usage record", "sessionId", sessionID)
	}

	endTime := time.Now()
	record.CallEndTime = &endTime
	record.Status = models.UsageStatusCompleted

	if record.CallStartTime != nil {
		duration := int64(endTime.Sub(*record.CallStartTime) / time.Second)
		record.DurationSeconds = &duration
	}

	if err := s.usageRepo.Save(record); err != nil {
		return nil, fmt.Errorf("save usage record: %w", err)
	}

	log.Printf("INFO: [UsageService] Ended session %s (total tokens: %d).", sessionID, record.TotalTokens)
	return record, nil
}

// GetCurrentMonthTokenUsage sums total_tokens across the hotel's usage
// records whose call started in the current calendar month, 0 when none did.
func (s *usageService) GetCurrentMonthTokenUsage(hotelID uint) (int, error) {
	if err := s.validateHotelExists(hotelID); err != nil {
		return 0, err
	}
	total, err := s.usageRepo.SumTotalTokensSince(hotelID, startOfCurrentMonth())
	if err != nil {
		return 0, fmt.Errorf("sum current month usage: %w", err)
	}
	return total, nil
}

func (s *usageService) findActiveSession(sessionID string) (*models.UsageRecord, error) {
	record, err := s.usageRepo.FindBySessionID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("find usage record: %w", err)
	}
	if record == nil {
		return nil, NewNotFoundError("Usage record", "sessionId", sessionID)
	}
	if record.Status == models.UsageStatusCompleted {
		return nil, NewInvalidStateError("Cannot update completed session")
	}
	return record, nil
}

func (s *usageService) validateHotelExists(hotelID uint) error {
	exists, err := s.hotelRepo.ExistsByID(hotelID)
	if err != nil {
		return fmt.Errorf("check hotel exists: %w", err)
	}
	if !exists {
		return NewNotFoundError("Hotel", "id", hotelID)
	}
	return nil
}

// startOfCurrentMonth is the first instant of the current calendar month in
// server-local time.
func startOfCurrentMonth() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}
