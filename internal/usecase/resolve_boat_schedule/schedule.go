package resolve_boat_schedule

import "github.com/divetrip/booking-service/internal/domain"

// classifyTrips классифицирует рейсы лодки относительно запрошенного
// диапазона: прямой конфликт при пересечении с самим диапазоном,
// буферный - при пересечении только с расширенным диапазоном
//
// Сравнение дат включительное: диапазоны пересекаются, если
// a.Start <= b.End && b.Start <= a.End
func classifyTrips(trips []*domain.Trip, requested, buffered domain.DateRange) []TripConflict {
	conflicts := make([]TripConflict, 0)

	for _, t := range trips {
		tripRange := t.Range()

		var severity domain.ConflictSeverity
		switch {
		case tripRange.Overlaps(requested):
			severity = domain.ConflictDirect
		case tripRange.Overlaps(buffered):
			severity = domain.ConflictBuffer
		default:
			continue
		}

		conflicts = append(conflicts, TripConflict{
			TripID:    t.ID,
			StartDate: t.StartDate,
			EndDate:   t.EndDate,
			Severity:  string(severity),
		})
	}

	return conflicts
}

// hasDirectConflict возвращает true, если среди конфликтов есть прямой
func hasDirectConflict(conflicts []TripConflict) bool {
	for _, c := range conflicts {
		if c.Severity == string(domain.ConflictDirect) {
			return true
		}
	}
	return false
}
