package create_waitlist

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/divetrip/booking-service/internal/api/handlers"
	"github.com/divetrip/booking-service/internal/api/middleware"
	createWaitlist "github.com/divetrip/booking-service/internal/usecase/create_waitlist"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTripID      = "некорректный ID рейса"
	msgInvalidCancelDate  = "некорректный формат даты истечения, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные запроса"
	msgUserNotFound       = "пользователь не найден"
	msgTripNotFound       = "рейс не найден"
	msgTripDeparted       = "рейс уже начался"
	msgWaitlistLimit      = "запрошено больше мест, чем активных опционов на рейсе"
)

type Handler struct {
	useCase CreateWaitlistUseCase
	logger  Logger
}

func NewHandler(useCase CreateWaitlistUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/trips/{tripId}/waitlist
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tripID, err := strconv.ParseInt(vars["tripId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /trips/{id}/waitlist - Invalid trip ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTripID)
		return
	}

	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /trips/{id}/waitlist - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateWaitlistRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /trips/{id}/waitlist - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tripID, ownerID)
	if err != nil {
		h.logger.Warn("POST /trips/{id}/waitlist - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCancelDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createWaitlist.ErrInvalidInput):
			h.logger.Warn("POST /trips/{id}/waitlist - Invalid input: trip_id=%d, error=%v", tripID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createWaitlist.ErrUserNotFound):
			h.logger.Warn("POST /trips/{id}/waitlist - User not found: owner_id=%d", ownerID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createWaitlist.ErrTripNotFound):
			h.logger.Warn("POST /trips/{id}/waitlist - Trip not found: trip_id=%d", tripID)
			handlers.RespondNotFound(w, msgTripNotFound)

		case errors.Is(err, createWaitlist.ErrTripDeparted):
			h.logger.Warn("POST /trips/{id}/waitlist - Trip departed: trip_id=%d", tripID)
			handlers.RespondConflict(w, msgTripDeparted)

		case errors.Is(err, createWaitlist.ErrWaitlistLimitExceeded):
			h.logger.Warn("POST /trips/{id}/waitlist - Limit exceeded: trip_id=%d, error=%v", tripID, err)
			handlers.RespondConflict(w, msgWaitlistLimit)

		default:
			h.logger.Error("POST /trips/{id}/waitlist - Failed to create waitlist entries: trip_id=%d, owner_id=%d, error=%v",
				tripID, ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /trips/{id}/waitlist - Waitlist entries created: trip_id=%d, owner_id=%d, count=%d",
		tripID, ownerID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
