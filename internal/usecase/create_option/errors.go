package create_option

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_option: invalid input data")

	// ErrUserNotFound возвращается, когда владелец бронирования не найден
	ErrUserNotFound = errors.New("create_option: user not found")

	// ErrTripNotFound возвращается, когда рейс не найден
	ErrTripNotFound = errors.New("create_option: trip not found")

	// ErrTripDeparted возвращается при попытке бронирования на ушедший рейс
	ErrTripDeparted = errors.New("create_option: trip has already departed")

	// ErrCabinNotFound возвращается, когда каюта не найдена или не относится
	// к лодке рейса
	ErrCabinNotFound = errors.New("create_option: cabin not found on trip's boat")

	// ErrInvalidBed возвращается при номере места вне диапазона каюты
	ErrInvalidBed = errors.New("create_option: bed number out of cabin range")

	// ErrBedTaken возвращается, когда место уже занято активным бронированием
	ErrBedTaken = errors.New("create_option: bed already taken")

	// ErrGenderConflict возвращается при нарушении однополой когорты каюты
	ErrGenderConflict = errors.New("create_option: gender conflicts with cabin cohort")

	// ErrCapacityExceeded возвращается, когда на рейсе не хватает мест
	ErrCapacityExceeded = errors.New("create_option: not enough available spots")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_option: internal error")
)
