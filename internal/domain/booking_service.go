package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingService is a bookable studio offering with its default duration and price
type BookingService struct {
	ID            int64
	Name          string
	Slug          string
	Description   string
	DurationHours decimal.Decimal
	Price         decimal.Decimal
	IsActive      bool
	SortOrder     int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Duration длительность услуги
func (s *BookingService) Duration() time.Duration {
	return HoursToDuration(s.DurationHours)
}
