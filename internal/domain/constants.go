package domain

// Waitlist bed numbering
const (
	// WaitlistBedBandStart первый номер синтетического диапазона мест ожидания
	// Реальные номера мест в каютах всегда меньше этого значения
	WaitlistBedBandStart = 1000
)

// Pricing
const (
	// SingleUseMultiplier наценка за одноместное размещение в каюте
	SingleUseMultiplier = 1.6
)

// Cancellation penalty tiers (days until departure -> penalty percent)
const (
	PenaltyLastWeekDays = 7
	PenaltyTwoWeeksDays = 14
	PenaltyOneMonthDays = 30

	PenaltyLastWeekPercent = 100
	PenaltyTwoWeeksPercent = 50
	PenaltyOneMonthPercent = 25
	PenaltyEarlyPercent    = 10
	PenaltyNonePercent     = 0
)

// Business validation constants
const (
	MaxBedsPerReservation = 50
	MaxGroupNameLength    = 200
	DefaultBufferDays     = 1
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, при которых бронирование считается активным
// Используется при выборке активных бронирований рейса
var ActiveStatuses = []BookingStatus{
	StatusOption,
	StatusConfirmed,
	StatusWaitlist,
}

// CapacityStatuses статусы, удерживающие место в счетчиках рейса
var CapacityStatuses = []BookingStatus{
	StatusOption,
	StatusConfirmed,
}
