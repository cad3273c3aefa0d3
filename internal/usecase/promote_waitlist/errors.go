package promote_waitlist

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("promote_waitlist: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("promote_waitlist: booking not found")

	// ErrNotWaitlist возвращается, когда бронирование не в листе ожидания
	ErrNotWaitlist = errors.New("promote_waitlist: booking is not a waitlist entry")

	// ErrTripNotFound возвращается, когда рейс не найден
	ErrTripNotFound = errors.New("promote_waitlist: trip not found")

	// ErrTripDeparted возвращается при попытке повышения на ушедший рейс
	ErrTripDeparted = errors.New("promote_waitlist: trip has already departed")

	// ErrCabinNotFound возвращается, когда каюта не найдена или не относится
	// к лодке рейса
	ErrCabinNotFound = errors.New("promote_waitlist: cabin not found on trip's boat")

	// ErrInvalidBed возвращается при номере места вне диапазона каюты
	ErrInvalidBed = errors.New("promote_waitlist: bed number out of cabin range")

	// ErrBedTaken возвращается, когда место уже занято активным бронированием
	ErrBedTaken = errors.New("promote_waitlist: bed already taken")

	// ErrGenderConflict возвращается при нарушении однополой когорты каюты
	ErrGenderConflict = errors.New("promote_waitlist: gender conflicts with cabin cohort")

	// ErrCapacityExceeded возвращается, когда на рейсе не хватает мест
	ErrCapacityExceeded = errors.New("promote_waitlist: not enough available spots")

	// ErrConcurrentModification возвращается, когда статус записи изменился
	// между чтением и записью
	ErrConcurrentModification = errors.New("promote_waitlist: booking changed concurrently")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("promote_waitlist: internal error")
)
