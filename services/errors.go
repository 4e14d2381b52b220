package services

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when a referenced hotel, booking or usage
// session does not exist.
type NotFoundError struct {
	Resource string
	Field    string
	Value    interface{}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s: %v", e.Resource, e.Field, e.Value)
}

// NewNotFoundError builds a NotFoundError for the given resource lookup.
func NewNotFoundError(resource, field string, value interface{}) *NotFoundError {
	return &NotFoundError{Resource: resource, Field: field, Value: value}
}

// ValidationError is returned for malformed input: bad date order, past
// check-in dates, unparseable status strings, duplicate registrations.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// RoomUnavailableError is returned when a requested date range conflicts
// with an existing non-cancelled booking. This is a conflict, not a bad
// request, and callers map it accordingly.
type RoomUnavailableError struct {
	Message string
}

func (e *RoomUnavailableError) Error() string {
	return e.Message
}

// NewRoomUnavailableError builds a RoomUnavailableError with the given message.
func NewRoomUnavailableError(msg string) *RoomUnavailableError {
	return &RoomUnavailableError{Message: msg}
}

// QuotaExceededError is returned when accepting new token usage would push a
// hotel past its monthly token limit. No mutation happens when it fires.
type QuotaExceededError struct {
	Message string
}

func (e *QuotaExceededError) Error() string {
	return e.Message
}

// NewQuotaExceededError builds a QuotaExceededError with the given message.
func NewQuotaExceededError(msg string) *QuotaExceededError {
	return &QuotaExceededError{Message: msg}
}

// InvalidStateError is returned when a mutation targets a COMPLETED session.
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string {
	return e.Message
}

// NewInvalidStateError builds an InvalidStateError with the given message.
func NewInvalidStateError(msg string) *InvalidStateError {
	return &InvalidStateError{Message: msg}
}

// ConflictError is returned when a caller-supplied unique key (session id)
// is already taken.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewConflictError builds a ConflictError with the given message.
func NewConflictError(msg string) *ConflictError {
	return &ConflictError{Message: msg}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsRoomUnavailable reports whether err is (or wraps) a RoomUnavailableError.
func IsRoomUnavailable(err error) bool {
	var target *RoomUnavailableError
	return errors.As(err, &target)
}

// IsQuotaExceeded reports whether err is (or wraps) a QuotaExceededError.
func IsQuotaExceeded(err error) bool {
	var target *QuotaExceededError
	return errors.As(err, &target)
}

// IsInvalidState reports whether err is (or wraps) an InvalidStateError.
func IsInvalidState(err error) bool {
	var target *InvalidStateError
	return errors.As(err, &target)
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}
