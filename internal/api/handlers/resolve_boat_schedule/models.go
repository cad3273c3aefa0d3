package resolve_boat_schedule

import (
	"fmt"
	"strconv"
	"time"

	"github.com/divetrip/booking-service/internal/domain"
	resolveSchedule "github.com/divetrip/booking-service/internal/usecase/resolve_boat_schedule"
)

// BoatResponse модель лодки в ответе
type BoatResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TripConflictResponse конфликт с существующим рейсом
type TripConflictResponse struct {
	TripID    int64  `json:"tripId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Severity  string `json:"severity"`
}

// BoatConflictsResponse занятая лодка с перечнем конфликтов
type BoatConflictsResponse struct {
	Boat      BoatResponse           `json:"boat"`
	Conflicts []TripConflictResponse `json:"conflicts"`
}

// ResolveBoatScheduleResponse HTTP response model
type ResolveBoatScheduleResponse struct {
	Available   []BoatResponse          `json:"available"`
	Unavailable []BoatConflictsResponse `json:"unavailable"`
}

// parseQuery собирает запрос use case из query-параметров
func parseQuery(query map[string][]string) (*resolveSchedule.Request, error) {
	getParam := func(name string) string {
		values := query[name]
		if len(values) == 0 {
			return ""
		}
		return values[0]
	}

	startDate, err := time.Parse(domain.DateFormat, getParam("startDate"))
	if err != nil {
		return nil, fmt.Errorf("invalid startDate: %v", err)
	}

	endDate, err := time.Parse(domain.DateFormat, getParam("endDate"))
	if err != nil {
		return nil, fmt.Errorf("invalid endDate: %v", err)
	}

	req := &resolveSchedule.Request{
		StartDate: startDate,
		EndDate:   endDate,
	}

	if raw := getParam("bufferDays"); raw != "" {
		bufferDays, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid bufferDays: %v", err)
		}
		req.BufferDays = &bufferDays
	}

	if raw := getParam("excludeBufferConflicts"); raw != "" {
		exclude, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid excludeBufferConflicts: %v", err)
		}
		req.ExcludeBufferConflicts = &exclude
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *resolveSchedule.Response) *ResolveBoatScheduleResponse {
	available := make([]BoatResponse, 0, len(resp.Available))
	for _, b := range resp.Available {
		available = append(available, BoatResponse{ID: b.ID, Name: b.Name})
	}

	unavailable := make([]BoatConflictsResponse, 0, len(resp.Unavailable))
	for _, bc := range resp.Unavailable {
		conflicts := make([]TripConflictResponse, 0, len(bc.Conflicts))
		for _, c := range bc.Conflicts {
			conflicts = append(conflicts, TripConflictResponse{
				TripID:    c.TripID,
				StartDate: c.StartDate.Format(domain.DateFormat),
				EndDate:   c.EndDate.Format(domain.DateFormat),
				Severity:  c.Severity,
			})
		}
		unavailable = append(unavailable, BoatConflictsResponse{
			Boat:      BoatResponse{ID: bc.Boat.ID, Name: bc.Boat.Name},
			Conflicts: conflicts,
		})
	}

	return &ResolveBoatScheduleResponse{
		Available:   available,
		Unavailable: unavailable,
	}
}
