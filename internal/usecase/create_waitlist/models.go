package create_waitlist

import (
	"time"

	"github.com/divetrip/booking-service/internal/domain"
)

// Request модель запроса на постановку в лист ожидания
type Request struct {
	TripID     int64         // ID рейса
	OwnerID    int64         // ID владельца бронирования
	Count      int           // Количество запрашиваемых мест
	Gender     domain.Gender // Пол бронируемых гостей
	GroupName  string        // Название группы
	CancelDate time.Time     // Дата истечения записи листа ожидания (обязательна)
}

// Booking модель созданной записи листа ожидания в ответе
type Booking struct {
	ID         int64
	TripID     int64
	BedNumber  int
	Status     string
	Gender     string
	GroupName  string
	Price      float64
	CancelDate *time.Time
	OwnerID    int64
	CreatedAt  time.Time
}

// Response модель ответа с созданными записями листа ожидания
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
		resp.Bookings = append(resp.Bookings, Booking{
			ID:         b.ID,
			TripID:     b.TripID,
			BedNumber:  b.BedNumber,
			Status:     string(b.Status),
			Gender:     string(b.Gender),
			GroupName:  b.GroupName,
			Price:      b.Price,
			CancelDate: b.CancelDate,
			OwnerID:    b.OwnerID,
			CreatedAt:  b.CreatedAt,
		})
	}

	return resp
}
