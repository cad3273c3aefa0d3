package promote_waitlist

import (
	"time"

	"github.com/divetrip/booking-service/internal/domain"
	promoteWaitlist "github.com/divetrip/booking-service/internal/usecase/promote_waitlist"
)

// PromoteWaitlistRequest HTTP request model
type PromoteWaitlistRequest struct {
	CabinID   int64 `json:"cabinId"`
	BedNumber int   `json:"bedNumber"`
}

// PromoteWaitlistResponse HTTP response model
type PromoteWaitlistResponse struct {
	ID        int64   `json:"id"`
	TripID    int64   `json:"tripId"`
	CabinID   int64   `json:"cabinId"`
	BedNumber int     `json:"bedNumber"`
	Status    string  `json:"status"`
	Gender    string  `json:"gender"`
	GroupName string  `json:"groupName"`
	Price     float64 `json:"price"`
	OwnerID   int64   `json:"ownerId"`
	UpdatedAt string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PromoteWaitlistRequest) ToUseCaseRequest(bookingID int64) *promoteWaitlist.Request {
	return &promoteWaitlist.Request{
		BookingID: bookingID,
		Bed:       domain.BedSelection{CabinID: r.CabinID, BedNumber: r.BedNumber},
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *promoteWaitlist.Response) *PromoteWaitlistResponse {
	return &PromoteWaitlistResponse{
		ID:        resp.ID,
		TripID:    resp.TripID,
		CabinID:   resp.CabinID,
		BedNumber: resp.BedNumber,
		Status:    resp.Status,
		Gender:    resp.Gender,
		GroupName: resp.GroupName,
		Price:     resp.Price,
		OwnerID:   resp.OwnerID,
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
