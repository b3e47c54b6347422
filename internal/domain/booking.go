package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/studio-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// allowedTransitions операторские переходы между статусами
var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// Booking is a customer's reservation of a studio service at a date and time
type Booking struct {
	ID            int64
	BookingNumber string
	ServiceID     *int64
	ServiceName   *string // из booking_services, только для чтения

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	BookingDate   time.Time
	BookingTime   types.TimeString
	DurationHours decimal.Decimal
	Location      string
	Message       string

	Status      BookingStatus
	Price       *decimal.Decimal
	DepositPaid bool
	AdminNotes  string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	ConfirmedAt *time.Time
	CancelledAt *time.Time
}

// IsActive returns true if the booking occupies calendar time
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.IsActive()
}

// CanTransitionTo reports whether an operator may move the booking to next
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	for _, s := range allowedTransitions[b.Status] {
		if s == next {
			return true
		}
	}
	return false
}

// Duration длительность бронирования
func (b *Booking) Duration() time.Duration {
	return HoursToDuration(b.DurationHours)
}

// Interval интервал [начало, начало+длительность) в часовом поясе даты бронирования
func (b *Booking) Interval() TimeRange {
	return b.IntervalOn(b.BookingDate)
}

// IntervalOn интервал бронирования, отложенный от календарного дня date.
// Драйвер возвращает DATE в UTC, поэтому сравнения ведутся в часовом поясе запроса.
func (b *Booking) IntervalOn(date time.Time) TimeRange {
	return NewTimeRange(b.BookingTime.On(date), b.Duration())
}

// IsValidBookingStatus проверяет, что статус известен
func IsValidBookingStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// BookingsFilter фильтр списка бронирований
type BookingsFilter struct {
	Email  *string        // Совпадение без учета регистра
	Status *BookingStatus // Фильтр по статусу
	Limit  uint64
	Offset uint64
}

// HoursToDuration переводит дробные часы в time.Duration
func HoursToDuration(hours decimal.Decimal) time.Duration {
	return time.Duration(hours.Mul(decimal.NewFromInt(int64(time.Hour))).IntPart())
}

// GenerateBookingNumber возвращает номер вида BK20250314A1B2C3
func GenerateBookingNumber(now time.Time) string {
	return fmt.Sprintf("BK%s%s", now.Format("20060102"), randomHex(6))
}

// GenerateOrderNumber возвращает номер вида KH-A1B2C3D4
func GenerateOrderNumber() string {
	return "KH-" + randomHex(8)
}

func randomHex(n int) string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:n])
}
