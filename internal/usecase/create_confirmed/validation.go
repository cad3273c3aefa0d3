package create_confirmed

import (
	"fmt"

	"github.com/divetrip/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TripID <= 0 {
		return fmt.Errorf("%w: tripID must be positive", ErrInvalidInput)
	}

	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}

	if len(req.Beds) == 0 {
		return fmt.Errorf("%w: at least one bed is required", ErrInvalidInput)
	}

	if len(req.Beds) > domain.MaxBedsPerReservation {
		return fmt.Errorf("%w: at most %d beds per reservation", ErrInvalidInput, domain.MaxBedsPerReservation)
	}

	if !req.Gender.IsSet() {
		return fmt.Errorf("%w: gender is required", ErrInvalidInput)
	}

	if len(req.GroupName) > domain.MaxGroupNameLength {
		return fmt.Errorf("%w: groupName exceeds %d characters", ErrInvalidInput, domain.MaxGroupNameLength)
	}

	return validateBedSelections(req.Beds)
}

// validateBedSelections проверяет запрошенные места: номера в допустимом
// диапазоне, без синтетической зоны листа ожидания и без дублей в запросе
func validateBedSelections(beds []domain.BedSelection) error {
	seen := make(map[domain.BedSelection]struct{}, len(beds))

	for _, bed := range beds {
		if bed.CabinID <= 0 {
			return fmt.Errorf("%w: cabinID must be positive", ErrInvalidInput)
		}
		if bed.BedNumber < 1 {
			return fmt.Errorf("%w: bedNumber must be positive", ErrInvalidInput)
		}
		if domain.IsWaitlistBedNumber(bed.BedNumber) {
			return fmt.Errorf("%w: bedNumber %d is in the reserved waitlist band", ErrInvalidInput, bed.BedNumber)
		}
		if _, ok := seen[bed]; ok {
			return fmt.Errorf("%w: duplicate bed cabin=%d bed=%d in request", ErrInvalidInput, bed.CabinID, bed.BedNumber)
		}
		seen[bed] = struct{}{}
	}

	return nil
}

// bedOccupied проверяет, занято ли место активным бронированием
// Просроченный опцион продолжает удерживать место: его ряд все еще активен
func bedOccupied(active []*domain.Booking, cabinID int64, bedNumber int) bool {
	for _, b := range active {
		if !b.IsActive() {
			continue
		}
		if b.CabinID != nil && *b.CabinID == cabinID && b.BedNumber == bedNumber {
			return true
		}
	}
	return false
}

// distinctCabins возвращает уникальные ID кают из запрошенных мест
func distinctCabins(beds []domain.BedSelection) []int64 {
	seen := make(map[int64]struct{}, len(beds))
	cabins := make([]int64, 0, len(beds))
	for _, bed := range beds {
		if _, ok := seen[bed.CabinID]; ok {
			continue
		}
		seen[bed.CabinID] = struct{}{}
		cabins = append(cabins, bed.CabinID)
	}
	return cabins
}
