package trip

import "errors"

var (
	// ErrTripNotFound возвращается, когда рейс не найден
	ErrTripNotFound = errors.New("trip.repository: trip not found")

	// ErrNoCapacity возвращается, когда на рейсе недостаточно свободных мест
	// для запрошенной резервации
	ErrNoCapacity = errors.New("trip.repository: not enough available spots")

	// ErrNoBookedSpots возвращается при попытке освободить больше мест,
	// чем занято (нарушение инварианта счетчиков)
	ErrNoBookedSpots = errors.New("trip.repository: not enough booked spots to release")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("trip.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("trip.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("trip.repository: failed to scan row")
)
