package promote_waitlist

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/divetrip/booking-service/internal/api/handlers"
	promoteWaitlist "github.com/divetrip/booking-service/internal/usecase/promote_waitlist"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidInput       = "некорректные данные запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgNotWaitlist        = "бронирование не находится в листе ожидания"
	msgTripNotFound       = "рейс не найден"
	msgTripDeparted       = "рейс уже начался"
	msgCabinNotFound      = "каюта не найдена на лодке рейса"
	msgInvalidBed         = "номер места вне диапазона каюты"
	msgBedTaken           = "место уже занято"
	msgGenderConflict     = "пол не совпадает с когортой каюты"
	msgCapacityExceeded   = "на рейсе недостаточно свободных мест"
	msgConcurrentChange   = "бронирование изменено параллельным запросом"
)

type Handler struct {
	useCase PromoteWaitlistUseCase
	logger  Logger
}

func NewHandler(useCase PromoteWaitlistUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/waitlist/{bookingId}/promote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /waitlist/{id}/promote - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req PromoteWaitlistRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /waitlist/{id}/promote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID))
	if err != nil {
		switch {
		case errors.Is(err, promoteWaitlist.ErrInvalidInput):
			h.logger.Warn("POST /waitlist/{id}/promote - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, promoteWaitlist.ErrBookingNotFound):
			h.logger.Warn("POST /waitlist/{id}/promote - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, promoteWaitlist.ErrNotWaitlist):
			h.logger.Warn("POST /waitlist/{id}/promote - Not a waitlist entry: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgNotWaitlist)

		case errors.Is(err, promoteWaitlist.ErrTripNotFound):
			h.logger.Warn("POST /waitlist/{id}/promote - Trip not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgTripNotFound)

		case errors.Is(err, promoteWaitlist.ErrTripDeparted):
			h.logger.Warn("POST /waitlist/{id}/promote - Trip departed: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgTripDeparted)

		case errors.Is(err, promoteWaitlist.ErrCabinNotFound):
			h.logger.Warn("POST /waitlist/{id}/promote - Cabin not found: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondNotFound(w, msgCabinNotFound)

		case errors.Is(err, promoteWaitlist.ErrInvalidBed):
			h.logger.Warn("POST /waitlist/{id}/promote - Invalid bed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidBed)

		case errors.Is(err, promoteWaitlist.ErrBedTaken):
			h.logger.Warn("POST /waitlist/{id}/promote - Bed taken: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondConflict(w, msgBedTaken)

		case errors.Is(err, promoteWaitlist.ErrGenderConflict):
			h.logger.Warn("POST /waitlist/{id}/promote - Gender conflict: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondConflict(w, msgGenderConflict)

		case errors.Is(err, promoteWaitlist.ErrCapacityExceeded):
			h.logger.Warn("POST /waitlist/{id}/promote - Capacity exceeded: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, promoteWaitlist.ErrConcurrentModification):
			h.logger.Warn("POST /waitlist/{id}/promote - Concurrent modification: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgConcurrentChange)

		default:
			h.logger.Error("POST /waitlist/{id}/promote - Failed to promote: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /waitlist/{id}/promote - Waitlist entry promoted: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
