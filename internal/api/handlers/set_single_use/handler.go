package set_single_use

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/divetrip/booking-service/internal/api/handlers"
	setSingleUse "github.com/divetrip/booking-service/internal/usecase/set_single_use"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgBookingNotFound    = "бронирование не найдено"
	msgBookingCancelled   = "бронирование отменено"
	msgWaitlistBooking    = "наценка неприменима к записи листа ожидания"
)

// SetSingleUseRequest HTTP request model
type SetSingleUseRequest struct {
	SingleUse bool `json:"singleUse"`
}

// SetSingleUseResponse HTTP response model
type SetSingleUseResponse struct {
	ID            int64   `json:"id"`
	TripID        int64   `json:"tripId"`
	Status        string  `json:"status"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`
	SingleUse     bool    `json:"singleUse"`
	UpdatedAt     string  `json:"updatedAt"`
}

type Handler struct {
	useCase SetSingleUseUseCase
	logger  Logger
}

func NewHandler(useCase SetSingleUseUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}/single-use
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id}/single-use - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req SetSingleUseRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id}/single-use - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &setSingleUse.Request{
		BookingID: bookingID,
		SingleUse: req.SingleUse,
	})
	if err != nil {
		switch {
		case errors.Is(err, setSingleUse.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id}/single-use - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, setSingleUse.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id}/single-use - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, setSingleUse.ErrBookingCancelled):
			h.logger.Warn("PUT /bookings/{id}/single-use - Booking cancelled: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgBookingCancelled)

		case errors.Is(err, setSingleUse.ErrWaitlistBooking):
			h.logger.Warn("PUT /bookings/{id}/single-use - Waitlist entry: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgWaitlistBooking)

		default:
			h.logger.Error("PUT /bookings/{id}/single-use - Failed to reprice: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id}/single-use - Booking repriced: booking_id=%d, single_use=%t, price=%.2f",
		bookingID, result.SingleUse, result.Price)
	handlers.RespondJSON(w, http.StatusOK, &SetSingleUseResponse{
		ID:            result.ID,
		TripID:        result.TripID,
		Status:        result.Status,
		Price:         result.Price,
		OriginalPrice: result.OriginalPrice,
		SingleUse:     result.SingleUse,
		UpdatedAt:     result.UpdatedAt.Format(time.RFC3339),
	})
}
