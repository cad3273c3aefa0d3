package resolve_boat_schedule

import (
	"context"
	"fmt"

	"github.com/divetrip/booking-service/internal/domain"
)

// UseCase use case подбора свободных лодок под запрошенный диапазон дат
// с учетом обязательных буферных дней до и после рейса
type UseCase struct {
	boatRepo BoatRepository
	tripRepo TripRepository

	bufferDays             int
	excludeBufferConflicts bool

	logger Logger
}

// NewUseCase создает новый экземпляр use case
// bufferDays и excludeBufferConflicts задают политику по умолчанию из
// конфигурации, запрос может переопределить обе
func NewUseCase(
	boatRepo BoatRepository,
	tripRepo TripRepository,
	bufferDays int,
	excludeBufferConflicts bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		boatRepo:               boatRepo,
		tripRepo:               tripRepo,
		bufferDays:             bufferDays,
		excludeBufferConflicts: excludeBufferConflicts,
		logger:                 logger,
	}
}

// Execute выполняет use case подбора лодок
//
// Лодка недоступна при любом прямом конфликте. Конфликт только по буферу
// исключает лодку в зависимости от политики, но в любом случае
// возвращается вызывающему как предупреждение
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	bufferDays := uc.bufferDays
	if req.BufferDays != nil {
		bufferDays = *req.BufferDays
	}
	excludeBuffer := uc.excludeBufferConflicts
	if req.ExcludeBufferConflicts != nil {
		excludeBuffer = *req.ExcludeBufferConflicts
	}

	uc.logger.Info("ResolveBoatSchedule: range=[%s, %s], buffer=%d, excludeBuffer=%t",
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat),
		bufferDays, excludeBuffer)

	if err := validateRequest(req, bufferDays); err != nil {
		uc.logger.Warn("ResolveBoatSchedule: validation failed: %v", err)
		return nil, err
	}

	requested := domain.DateRange{Start: req.StartDate, End: req.EndDate}
	buffered := requested.Buffered(bufferDays)

	boats, err := uc.boatRepo.List(ctx)
	if err != nil {
		uc.logger.Error("ResolveBoatSchedule: failed to list boats: %v", err)
		return nil, fmt.Errorf("%w: failed to list boats: %v", ErrInternal, err)
	}

	resp := &Response{
		Available:   make([]Boat, 0, len(boats)),
		Unavailable: make([]BoatConflicts, 0),
	}

	for _, boat := range boats {
		trips, err := uc.tripRepo.ListByBoat(ctx, boat.ID)
		if err != nil {
			uc.logger.Error("ResolveBoatSchedule: failed to list trips for boat=%d: %v", boat.ID, err)
			return nil, fmt.Errorf("%w: failed to list trips: %v", ErrInternal, err)
		}

		conflicts := classifyTrips(trips, requested, buffered)

		switch {
		case len(conflicts) == 0:
			resp.Available = append(resp.Available, toBoat(boat))
		case hasDirectConflict(conflicts) || excludeBuffer:
			resp.Unavailable = append(resp.Unavailable, BoatConflicts{
				Boat:      toBoat(boat),
				Conflicts: conflicts,
			})
		default:
			// Только буферные конфликты при мягкой политике: лодка
			// доступна, но конфликты все равно возвращаются как
			// предупреждение
			resp.Available = append(resp.Available, toBoat(boat))
			resp.Unavailable = append(resp.Unavailable, BoatConflicts{
				Boat:      toBoat(boat),
				Conflicts: conflicts,
			})
		}
	}

	uc.logger.Info("ResolveBoatSchedule: %d boats available, %d with conflicts",
		len(resp.Available), len(resp.Unavailable))
	return resp, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, bufferDays int) error {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	requested := domain.DateRange{Start: req.StartDate, End: req.EndDate}
	if !requested.IsValid() {
		return fmt.Errorf("%w: startDate is after endDate", ErrInvalidInput)
	}

	if bufferDays < 0 {
		return fmt.Errorf("%w: bufferDays must not be negative", ErrInvalidInput)
	}

	return nil
}
