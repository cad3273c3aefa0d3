package create_confirmed

import (
	"time"

	"github.com/divetrip/booking-service/internal/domain"
)

// Request модель запроса на создание подтвержденного бронирования
type Request struct {
	TripID    int64                 // ID рейса
	OwnerID   int64                 // ID владельца бронирования
	Beds      []domain.BedSelection // Запрошенные места (каюта + номер места)
	Gender    domain.Gender         // Пол бронируемых гостей
	GroupName string                // Название группы
}

// Booking модель созданного бронирования в ответе
type Booking struct {
	ID            int64
	TripID        int64
	CabinID       int64
	BedNumber     int
	Status        string
	Gender        string
	GroupName     string
	Price         float64
	OriginalPrice float64
	CancelDate    *time.Time
	OwnerID       int64
	CreatedAt     time.Time
}

// Response модель ответа с созданными бронированиями
type Response struct {
	TripID   int64
	Bookings []Booking
}

// fromDomain конвертирует созданные ряды в модель ответа
func fromDomain(tripID int64, created []*domain.Booking) *Response {
	resp := &Response{
		TripID:   tripID,
		Bookings: make([]Booking, 0, len(created)),
	}

	for _, b := range created {
		var cabinID int64
		if b.CabinID != nil {
			cabinID = *b.CabinID
		}
		resp.Bookings = append(resp.Bookings, Booking{
			ID:            b.ID,
			TripID:        b.TripID,
			CabinID:       cabinID,
			BedNumber:     b.BedNumber,
			Status:        string(b.Status),
			Gender:        string(b.Gender),
			GroupName:     b.GroupName,
			Price:         b.Price,
			OriginalPrice: b.OriginalPrice,
			CancelDate:    b.CancelDate,
			OwnerID:       b.OwnerID,
			CreatedAt:     b.CreatedAt,
		})
	}

	return resp
}
