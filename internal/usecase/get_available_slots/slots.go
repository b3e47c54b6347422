package get_available_slots

import (
	"time"

	"github.com/m04kA/studio-service/internal/domain"
	"github.com/m04kA/studio-service/pkg/types"
)

// buildSlots строит список слотов на дату
// Кандидаты идут с шагом step от начала каждого окна, пока слот целиком помещается в окно.
// Окна перебираются в порядке правил (по времени начала).
func buildSlots(
	date time.Time,
	duration time.Duration,
	rules []*domain.AvailabilityRule,
	bookings []*domain.Booking,
	settings Settings,
) []domain.AvailableSlot {
	open, closed := domain.ScheduleForDate(rules, date)
	windows := ruleWindows(open, date)
	blackouts := ruleWindows(closed, date)

	// Нет открытых окон на дату: работаем по окну по умолчанию
	if len(windows) == 0 {
		windows = []domain.TimeRange{
			domain.ClockRange(date, settings.DefaultWindowStart, settings.DefaultWindowEnd),
		}
	}

	busy := make([]domain.TimeRange, 0, len(bookings))
	for _, booking := range bookings {
		if booking.IsActive() {
			busy = append(busy, booking.IntervalOn(date))
		}
	}

	slots := make([]domain.AvailableSlot, 0)
	for _, window := range windows {
		for t := window.Start; !t.Add(duration).After(window.End); t = t.Add(settings.Step) {
			slot := domain.NewTimeRange(t, duration)
			slots = append(slots, domain.AvailableSlot{
				Date:      date,
				Time:      types.NewTimeString(t),
				Available: isFree(slot, busy, blackouts, settings.Occupancy),
			})
		}
	}

	return slots
}

// ruleWindows интервалы правил на дату
func ruleWindows(rules []*domain.AvailabilityRule, date time.Time) []domain.TimeRange {
	windows := make([]domain.TimeRange, 0, len(rules))
	for _, rule := range rules {
		windows = append(windows, rule.Window(date))
	}
	return windows
}

func isFree(slot domain.TimeRange, busy, blackouts []domain.TimeRange, occupancy domain.SlotOccupancy) bool {
	for _, b := range blackouts {
		if slot.Overlaps(b) {
			return false
		}
	}
	for _, b := range busy {
		if occupancy.Occupies(slot, b) {
			return false
		}
	}
	return true
}
