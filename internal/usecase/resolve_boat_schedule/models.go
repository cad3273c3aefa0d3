package resolve_boat_schedule

import (
	"time"

	"github.com/divetrip/booking-service/internal/domain"
)

// Request модель запроса на подбор свободных лодок под диапазон дат
type Request struct {
	StartDate time.Time // Начало желаемого диапазона (включительно)
	EndDate   time.Time // Конец желаемого диапазона (включительно)

	// BufferDays переопределяет число буферных дней из конфигурации
	BufferDays *int

	// ExcludeBufferConflicts переопределяет политику из конфигурации:
	// исключать ли лодку при конфликте только по буферу
	ExcludeBufferConflicts *bool
}

// Boat модель лодки в ответе
type Boat struct {
	ID   int64
	Name string
}

// TripConflict конфликт запрошенного диапазона с существующим рейсом
type TripConflict struct {
	TripID    int64
	StartDate time.Time
	EndDate   time.Time
	Severity  string // direct | buffer
}

// BoatConflicts лодка с перечнем конфликтующих рейсов
type BoatConflicts struct {
	Boat      Boat
	Conflicts []TripConflict
}

// Response модель ответа: свободные лодки и занятые с причинами
type Response struct {
	Available   []Boat
	Unavailable []BoatConflicts
}

func toBoat(b *domain.Boat) Boat {
	return Boat{ID: b.ID, Name: b.Name}
}
