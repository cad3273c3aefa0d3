package capacity

import "errors"

var (
	// ErrCapacityExceeded возвращается, когда запрошено больше мест,
	// чем доступно на рейсе
	ErrCapacityExceeded = errors.New("capacity: requested spots exceed available")

	// ErrTripNotFound возвращается, когда рейс не найден
	ErrTripNotFound = errors.New("capacity: trip not found")

	// ErrInvalidSpots возвращается при неположительном количестве мест
	ErrInvalidSpots = errors.New("capacity: spots must be positive")

	// ErrLedgerInvariant возвращается при попытке освободить больше мест,
	// чем занято - счетчики рейса рассогласованы с рядами бронирований
	ErrLedgerInvariant = errors.New("capacity: ledger invariant violated")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("capacity: internal error")
)
