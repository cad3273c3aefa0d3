package convert_options

import (
	"time"

	"github.com/divetrip/booking-service/internal/domain"
)

// Request модель запроса на конвертацию опционов в подтвержденные
type Request struct {
	BookingIDs []int64 // ID опционов для конвертации
}

// Booking модель конвертированного бронирования в ответе
type Booking struct {
	ID         int64
	TripID     int64
	CabinID    int64
	BedNumber  int
	Status     string
	Gender     string
	GroupName  string
	Price      float64
	CancelDate *time.Time
	OwnerID    int64
	UpdatedAt  time.Time
}

// Result исход конвертации для отдельного бронирования
type Result struct {
	BookingID int64
	Converted bool
	Reason    string // Причина отказа, пусто при успехе
	Booking   *Booking
}

// Response модель ответа с исходами по каждому бронированию
type Response struct {
	Results []Result
}

// toBooking конвертирует доменную модель в модель ответа
func toBooking(b *domain.Booking) *Booking {
	var cabinID int64
	if b.CabinID != nil {
		cabinID = *b.CabinID
	}
	return &Booking{
		ID:         b.ID,
		TripID:     b.TripID,
		CabinID:    cabinID,
		BedNumber:  b.BedNumber,
		Status:     string(b.Status),
		Gender:     string(b.Gender),
		GroupName:  b.GroupName,
		Price:      b.Price,
		CancelDate: b.CancelDate,
		OwnerID:    b.OwnerID,
		UpdatedAt:  b.UpdatedAt,
	}
}
