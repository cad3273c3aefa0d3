package create_confirmed

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/divetrip/booking-service/internal/api/handlers"
	"github.com/divetrip/booking-service/internal/api/middleware"
	createConfirmed "github.com/divetrip/booking-service/internal/usecase/create_confirmed"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTripID      = "некорректный ID рейса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные бронирования"
	msgUserNotFound       = "пользователь не найден"
	msgTripNotFound       = "рейс не найден"
	msgTripDeparted       = "рейс уже начался"
	msgCabinNotFound      = "каюта не найдена на лодке рейса"
	msgInvalidBed         = "номер места вне диапазона каюты"
	msgBedTaken           = "место уже занято"
	msgGenderConflict     = "пол не совпадает с когортой каюты"
	msgCapacityExceeded   = "на рейсе недостаточно свободных мест"
)

type Handler struct {
	useCase CreateConfirmedUseCase
	logger  Logger
}

func NewHandler(useCase CreateConfirmedUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/trips/{tripId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tripID, err := strconv.ParseInt(vars["tripId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /trips/{id}/bookings - Invalid trip ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTripID)
		return
	}

	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /trips/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateConfirmedRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /trips/{id}/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(tripID, ownerID))
	if err != nil {
		switch {
		case errors.Is(err, createConfirmed.ErrInvalidInput):
			h.logger.Warn("POST /trips/{id}/bookings - Invalid input: trip_id=%d, error=%v", tripID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createConfirmed.ErrUserNotFound):
			h.logger.Warn("POST /trips/{id}/bookings - User not found: owner_id=%d", ownerID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createConfirmed.ErrTripNotFound):
			h.logger.Warn("POST /trips/{id}/bookings - Trip not found: trip_id=%d", tripID)
			handlers.RespondNotFound(w, msgTripNotFound)

		case errors.Is(err, createConfirmed.ErrTripDeparted):
			h.logger.Warn("POST /trips/{id}/bookings - Trip departed: trip_id=%d", tripID)
			handlers.RespondConflict(w, msgTripDeparted)

		case errors.Is(err, createConfirmed.ErrCabinNotFound):
			h.logger.Warn("POST /trips/{id}/bookings - Cabin not found: trip_id=%d, error=%v", tripID, err)
			handlers.RespondNotFound(w, msgCabinNotFound)

		case errors.Is(err, createConfirmed.ErrInvalidBed):
			h.logger.Warn("POST /trips/{id}/bookings - Invalid bed: trip_id=%d, error=%v", tripID, err)
			handlers.RespondBadRequest(w, msgInvalidBed)

		case errors.Is(err, createConfirmed.ErrBedTaken):
			h.logger.Warn("POST /trips/{id}/bookings - Bed taken: trip_id=%d, error=%v", tripID, err)
			handlers.RespondConflict(w, msgBedTaken)

		case errors.Is(err, createConfirmed.ErrGenderConflict):
			h.logger.Warn("POST /trips/{id}/bookings - Gender conflict: trip_id=%d, error=%v", tripID, err)
			handlers.RespondConflict(w, msgGenderConflict)

		case errors.Is(err, createConfirmed.ErrCapacityExceeded):
			h.logger.Warn("POST /trips/{id}/bookings - Capacity exceeded: trip_id=%d, error=%v", tripID, err)
			handlers.RespondConflict(w, msgCapacityExceeded)

		default:
			h.logger.Error("POST /trips/{id}/bookings - Failed to create bookings: trip_id=%d, owner_id=%d, error=%v",
				tripID, ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /trips/{id}/bookings - Confirmed bookings created: trip_id=%d, owner_id=%d, count=%d",
		tripID, ownerID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
