package repricer

import (
	"math"

	"github.com/divetrip/booking-service/internal/domain"
)

// Service пересчет цены бронирования при одноместном размещении
//
// Наценка всегда применяется к OriginalPrice, а не к текущей цене, поэтому
// повторное применение идемпотентно: ApplySingleUse(ApplySingleUse(b)) дает
// ту же цену, что и однократный вызов
type Service struct{}

// NewService создает репрайсер
func NewService() *Service {
	return &Service{}
}

// ApplySingleUse возвращает копию бронирования с наценкой за размещение
// в каюте без соседей; OriginalPrice не изменяется
func (s *Service) ApplySingleUse(b domain.Booking) domain.Booking {
	b.SingleUse = true
	b.Price = math.Round(b.OriginalPrice * domain.SingleUseMultiplier)
	return b
}

// RevertSingleUse возвращает копию бронирования с исходной ценой
func (s *Service) RevertSingleUse(b domain.Booking) domain.Booking {
	b.SingleUse = false
	b.Price = b.OriginalPrice
	return b
}
