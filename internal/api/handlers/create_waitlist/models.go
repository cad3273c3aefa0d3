package create_waitlist

import (
	"time"

	"github.com/divetrip/booking-service/internal/domain"
	createWaitlist "github.com/divetrip/booking-service/internal/usecase/create_waitlist"
)

// CreateWaitlistRequest HTTP request model
type CreateWaitlistRequest struct {
	Count      int    `json:"count"`
	Gender     string `json:"gender"`
	GroupName  string `json:"groupName,omitempty"`
	CancelDate string `json:"cancelDate"` // "2025-10-15"
}

// WaitlistEntryResponse HTTP модель записи листа ожидания
type WaitlistEntryResponse struct {
	ID         int64   `json:"id"`
	TripID     int64   `json:"tripId"`
	BedNumber  int     `json:"bedNumber"`
	Status     string  `json:"status"`
	Gender     string  `json:"gender"`
	GroupName  string  `json:"groupName"`
	Price      float64 `json:"price"`
	CancelDate *string `json:"cancelDate,omitempty"`
	OwnerID    int64   `json:"ownerId"`
	CreatedAt  string  `json:"createdAt"`
}

// CreateWaitlistResponse HTTP response model
type CreateWaitlistResponse struct {
	TripID   int64                   `json:"tripId"`
	Bookings []WaitlistEntryResponse `json:"bookings"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateWaitlistRequest) ToUseCaseRequest(tripID, ownerID int64) (*createWaitlist.Request, error) {
	cancelDate, err := time.Parse(domain.DateFormat, r.CancelDate)
	if err != nil {
		return nil, err
	}

	return &createWaitlist.Request{
		TripID:     tripID,
		OwnerID:    ownerID,
		Count:      r.Count,
		Gender:     domain.Gender(r.Gender),
		GroupName:  r.GroupName,
		CancelDate: cancelDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createWaitlist.Response) *CreateWaitlistResponse {
	out := &CreateWaitlistResponse{
		TripID:   resp.TripID,
		Bookings: make([]WaitlistEntryResponse, 0, len(resp.Bookings)),
	}

	for _, b := range resp.Bookings {
		var cancelDate *string
		if b.CancelDate != nil {
			s := b.CancelDate.Format(domain.DateFormat)
			cancelDate = &s
		}
		out.Bookings = append(out.Bookings, WaitlistEntryResponse{
			ID:         b.ID,
			TripID:     b.TripID,
			BedNumber:  b.BedNumber,
			Status:     b.Status,
			Gender:     b.Gender,
			GroupName:  b.GroupName,
			Price:      b.Price,
			CancelDate: cancelDate,
			OwnerID:    b.OwnerID,
			CreatedAt:  b.CreatedAt.Format(time.RFC3339),
		})
	}

	return out
}
