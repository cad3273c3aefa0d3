package cancel_bookings

// Request модель запроса на отмену бронирований
type Request struct {
	BookingIDs []int64 // ID бронирований для отмены
}

// Result исход отмены для отдельного бронирования
type Result struct {
	BookingID      int64
	Cancelled      bool
	Reason         string // Причина отказа, пусто при успехе
	PenaltyPercent int    // Штраф в процентах (информационно)
	PenaltyTier    string // Ступень штрафа
}

// Response модель ответа с исходами по каждому бронированию
type Response struct {
	Results []Result
}
