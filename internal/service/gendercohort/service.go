package gendercohort

import (
	"errors"
	"fmt"
	"time"

	"github.com/divetrip/booking-service/internal/domain"
)

var (
	// ErrGenderConflict возвращается, когда пол кандидата не совпадает
	// с уже сложившейся когортой каюты
	ErrGenderConflict = errors.New("gendercohort: candidate gender conflicts with cabin cohort")
)

// Service политика однополой когорты каюты
//
// Правило: пока ни у одного активного бронирования каюты пол не задан,
// допускается любой пол - первый заданный становится полом когорты на
// все время жизни рейса, пока все места каюты не освободятся
type Service struct{}

// NewService создает политику гендерной когорты
func NewService() *Service {
	return &Service{}
}

// ResolveCohortGender определяет пол когорты каюты по активным бронированиям
// Учитываются только бронирования этой каюты, удерживающие место:
// отмененные, просроченные опционы и записи листа ожидания исключаются
func (s *Service) ResolveCohortGender(
	cabinID int64,
	activeBookings []*domain.Booking,
	now time.Time,
) domain.Gender {
	for _, b := range activeBookings {
		if !s.inCohort(b, cabinID, now) {
			continue
		}
		if b.Gender.IsSet() {
			return b.Gender
		}
	}
	return domain.GenderUnset
}

// ValidateAssignment проверяет, что кандидат может занять место в каюте
// Если когорта не сложилась, любой пол допустим; иначе пол кандидата
// должен совпадать с полом когорты
func (s *Service) ValidateAssignment(
	cabinID int64,
	activeBookings []*domain.Booking,
	candidate domain.Gender,
	now time.Time,
) error {
	cohort := s.ResolveCohortGender(cabinID, activeBookings, now)
	if cohort == domain.GenderUnset {
		return nil
	}
	if !candidate.IsSet() || candidate == cohort {
		return nil
	}
	return fmt.Errorf("%w: cabin=%d cohort=%s candidate=%s", ErrGenderConflict, cabinID, cohort, candidate)
}

// inCohort проверяет, участвует ли бронирование в когорте каюты
func (s *Service) inCohort(b *domain.Booking, cabinID int64, now time.Time) bool {
	if b.CabinID == nil || *b.CabinID != cabinID {
		return false
	}
	if !b.IsActive() || b.Status == domain.StatusWaitlist {
		return false
	}
	// Просроченный опцион все еще держит место, но из гендерной когорты исключен
	if b.IsExpiredOption(now) {
		return false
	}
	return true
}
