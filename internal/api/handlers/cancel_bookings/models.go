package cancel_bookings

import (
	cancelBookings "github.com/divetrip/booking-service/internal/usecase/cancel_bookings"
)

// CancelBookingsRequest HTTP request model
type CancelBookingsRequest struct {
	BookingIDs []int64 `json:"bookingIds"`
}

// CancelResult HTTP модель исхода отмены одного бронирования
type CancelResult struct {
	BookingID      int64  `json:"bookingId"`
	Cancelled      bool   `json:"cancelled"`
	Reason         string `json:"reason,omitempty"`
	PenaltyPercent int    `json:"penaltyPercent"`
	PenaltyTier    string `json:"penaltyTier,omitempty"`
}

// CancelBookingsResponse HTTP response model
type CancelBookingsResponse struct {
	Results []CancelResult `json:"results"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *cancelBookings.Response) *CancelBookingsResponse {
	out := &CancelBookingsResponse{Results: make([]CancelResult, 0, len(resp.Results))}

	for _, r := range resp.Results {
		out.Results = append(out.Results, CancelResult{
			BookingID:      r.BookingID,
			Cancelled:      r.Cancelled,
			Reason:         r.Reason,
			PenaltyPercent: r.PenaltyPercent,
			PenaltyTier:    r.PenaltyTier,
		})
	}

	return out
}
