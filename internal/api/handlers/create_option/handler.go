package create_option

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/divetrip/booking-service/internal/api/handlers"
	"github.com/divetrip/booking-service/internal/api/middleware"
	createOption "github.com/divetrip/booking-service/internal/usecase/create_option"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTripID      = "некорректный ID рейса"
	msgInvalidCancelDate  = "некорректный формат даты истечения, ожидается YYYY-MM-DD"
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
	useCase CreateOptionUseCase
	logger  Logger
}

func NewHandler(useCase CreateOptionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/trips/{tripId}/options
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tripID, err := strconv.ParseInt(vars["tripId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /trips/{id}/options - Invalid trip ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTripID)
		return
	}

	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /trips/{id}/options - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateOptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /trips/{id}/options - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tripID, ownerID)
	if err != nil {
		h.logger.Warn("POST /trips/{id}/options - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCancelDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createOption.ErrInvalidInput):
			h.logger.Warn("POST /trips/{id}/options - Invalid input: trip_id=%d, error=%v", tripID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createOption.ErrUserNotFound):
			h.logger.Warn("POST /trips/{id}/options - User not found: owner_id=%d", ownerID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createOption.ErrTripNotFound):
			h.logger.Warn("POST /trips/{id}/options - Trip not found: trip_id=%d", tripID)
			handlers.RespondNotFound(w, msgTripNotFound)

		case errors.Is(err, createOption.ErrTripDeparted):
			h.logger.Warn("POST /trips/{id}/options - Trip departed: trip_id=%d", tripID)
			handlers.RespondConflict(w, msgTripDeparted)

		case errors.Is(err, createOption.ErrCabinNotFound):
			h.logger.Warn("POST /trips/{id}/options - Cabin not found: trip_id=%d, error=%v", tripID, err)
			handlers.RespondNotFound(w, msgCabinNotFound)

		case errors.Is(err, createOption.ErrInvalidBed):
			h.logger.Warn("POST /trips/{id}/options - Invalid bed: trip_id=%d, error=%v", tripID, err)
			handlers.RespondBadRequest(w, msgInvalidBed)

		case errors.Is(err, createOption.ErrBedTaken):
			h.logger.Warn("POST /trips/{id}/options - Bed taken: trip_id=%d, error=%v", tripID, err)
			handlers.RespondConflict(w, msgBedTaken)

		case errors.Is(err, createOption.ErrGenderConflict):
			h.logger.Warn("POST /trips/{id}/options - Gender conflict: trip_id=%d, error=%v", tripID, err)
			handlers.RespondConflict(w, msgGenderConflict)

		case errors.Is(err, createOption.ErrCapacityExceeded):
			h.logger.Warn("POST /trips/{id}/options - Capacity exceeded: trip_id=%d, error=%v", tripID, err)
			handlers.RespondConflict(w, msgCapacityExceeded)

		default:
			h.logger.Error("POST /trips/{id}/options - Failed to create options: trip_id=%d, owner_id=%d, error=%v",
				tripID, ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /trips/{id}/options - Options created: trip_id=%d, owner_id=%d, count=%d",
		tripID, ownerID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
