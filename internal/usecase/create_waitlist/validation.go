package create_waitlist

import (
	"fmt"
	"time"

	"github.com/divetrip/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.TripID <= 0 {
		return fmt.Errorf("%w: tripID must be positive", ErrInvalidInput)
	}

	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}

	if req.Count <= 0 {
		return fmt.Errorf("%w: count must be positive", ErrInvalidInput)
	}

	if req.Count > domain.MaxBedsPerReservation {
		return fmt.Errorf("%w: at most %d entries per request", ErrInvalidInput, domain.MaxBedsPerReservation)
	}

	if !req.Gender.IsSet() {
		return fmt.Errorf("%w: gender is required", ErrInvalidInput)
	}

	if len(req.GroupName) > domain.MaxGroupNameLength {
		return fmt.Errorf("%w: groupName exceeds %d characters", ErrInvalidInput, domain.MaxGroupNameLength)
	}

	if req.CancelDate.IsZero() {
		return fmt.Errorf("%w: cancelDate is required for a waitlist entry", ErrInvalidInput)
	}
	if isDateInPast(req.CancelDate, now) {
		return fmt.Errorf("%w: cancelDate is in the past", ErrInvalidInput)
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
