package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/studio-service/internal/domain"
	"github.com/m04kA/studio-service/pkg/types"
)

var maxDurationHours = decimal.NewFromInt(domain.MaxBookingDurationHours)

// validateRequest валидирует входные данные и разбирает дату и время
func validateRequest(req *Request, loc *time.Location) (*slotRequest, error) {
	if req.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: service must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, fmt.Errorf("%w: customer_name is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return nil, fmt.Errorf("%w: customer_name must be at most %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if strings.TrimSpace(req.CustomerEmail) == "" {
		return nil, fmt.Errorf("%w: customer_email is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		return nil, fmt.Errorf("%w: customer_phone is required", ErrInvalidInput)
	}
	if len(req.CustomerPhone) > domain.MaxPhoneLength {
		return nil, fmt.Errorf("%w: customer_phone must be at most %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if len(req.Location) > domain.MaxLocationLength {
		return nil, fmt.Errorf("%w: location must be at most %d characters", ErrInvalidInput, domain.MaxLocationLength)
	}

	if req.DurationHours != nil {
		if !req.DurationHours.IsPositive() || req.DurationHours.GreaterThan(maxDurationHours) {
			return nil, fmt.Errorf("%w: duration_hours must be in (0, %d]", ErrInvalidInput, domain.MaxBookingDurationHours)
		}
		// Колонка NUMERIC(4,1): более точное значение округлится при вставке и разойдется с проверкой пересечений
		if !req.DurationHours.Equal(req.DurationHours.Round(domain.DurationHoursPrecision)) {
			return nil, fmt.Errorf("%w: duration_hours must have at most %d decimal place", ErrInvalidInput, domain.DurationHoursPrecision)
		}
	}

	date, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(req.Date), loc)
	if err != nil {
		return nil, fmt.Errorf("%w: booking_date must be YYYY-MM-DD", ErrInvalidInput)
	}

	start, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: booking_time must be HH:MM", ErrInvalidInput)
	}

	return &slotRequest{date: date, start: start}, nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, date.Location())
	return dateOnly.Before(nowOnly)
}

// findConflict ищет активное бронирование, пересекающееся с предлагаемым интервалом
func findConflict(proposed domain.TimeRange, date time.Time, bookings []*domain.Booking) *domain.Booking {
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if proposed.Overlaps(booking.IntervalOn(date)) {
			return booking
		}
	}
	return nil
}
