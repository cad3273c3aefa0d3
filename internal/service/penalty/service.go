package penalty

import (
	"time"

	"github.com/divetrip/booking-service/internal/domain"
	"github.com/divetrip/booking-service/pkg/types"
)

// Tier ступень штрафа за отмену
type Tier string

const (
	TierNone     Tier = "none"
	TierEarly    Tier = "early"
	TierOneMonth Tier = "one_month"
	TierTwoWeeks Tier = "two_weeks"
	TierLastWeek Tier = "last_week"
)

// Penalty результат расчета штрафа за отмену
type Penalty struct {
	Percent int
	Tier    Tier
}

// Service калькулятор штрафов за отмену бронирования
// Чистая функция от даты начала рейса и текущей даты: без побочных эффектов,
// безопасно вызывать многократно. Ядро только сообщает ступень штрафа,
// списанием денег занимается вызывающая сторона
type Service struct{}

// NewService создает калькулятор штрафов
func NewService() *Service {
	return &Service{}
}

// Calculate вычисляет штраф за отмену бронирования
// Штраф начисляется только за подтвержденные бронирования:
// опцион и лист ожидания отменяются без штрафа
func (s *Service) Calculate(tripStartDate, now time.Time, status domain.BookingStatus) Penalty {
	if status != domain.StatusConfirmed {
		return Penalty{Percent: domain.PenaltyNonePercent, Tier: TierNone}
	}

	daysUntil := types.DaysBetween(now, tripStartDate)

	switch {
	case daysUntil <= domain.PenaltyLastWeekDays:
		return Penalty{Percent: domain.PenaltyLastWeekPercent, Tier: TierLastWeek}
	case daysUntil <= domain.PenaltyTwoWeeksDays:
		return Penalty{Percent: domain.PenaltyTwoWeeksPercent, Tier: TierTwoWeeks}
	case daysUntil <= domain.PenaltyOneMonthDays:
		return Penalty{Percent: domain.PenaltyOneMonthPercent, Tier: TierOneMonth}
	default:
		return Penalty{Percent: domain.PenaltyEarlyPercent, Tier: TierEarly}
	}
}
