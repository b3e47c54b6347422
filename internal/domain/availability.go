package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/studio-service/pkg/types"
)

// AvailabilityRule describes when the studio is open (or blacked out).
// A rule targets either a weekday (0 = Monday ... 6 = Sunday) or a specific date.
type AvailabilityRule struct {
	ID           int64
	Weekday      *int
	SpecificDate *time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	IsAvailable  bool
	Notes        string
}

// Validate проверяет инварианты правила
func (r *AvailabilityRule) Validate() error {
	if (r.Weekday == nil) == (r.SpecificDate == nil) {
		return fmt.Errorf("%w: exactly one of weekday or specific_date must be set", ErrInvalidRule)
	}
	if r.Weekday != nil && (*r.Weekday < 0 || *r.Weekday > MaxWeekday) {
		return fmt.Errorf("%w: weekday must be between 0 and %d", ErrInvalidRule, MaxWeekday)
	}
	if err := r.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start_time: %v", ErrInvalidRule, err)
	}
	if err := r.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: end_time: %v", ErrInvalidRule, err)
	}
	if !r.StartTime.IsBefore(r.EndTime) {
		return fmt.Errorf("%w: start_time must be before end_time", ErrInvalidRule)
	}
	if len(r.Notes) > MaxRuleNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidRule, MaxRuleNotesLength)
	}
	return nil
}

// MatchesDate проверяет, что правило задано на конкретную дату date
func (r *AvailabilityRule) MatchesDate(date time.Time) bool {
	if r.SpecificDate == nil {
		return false
	}
	y1, m1, d1 := r.SpecificDate.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// MatchesWeekday проверяет, что правило задано на день недели даты date
func (r *AvailabilityRule) MatchesWeekday(date time.Time) bool {
	return r.Weekday != nil && *r.Weekday == WeekdayIndex(date)
}

// Window интервал правила на указанную дату
func (r *AvailabilityRule) Window(date time.Time) TimeRange {
	return ClockRange(date, r.StartTime, r.EndTime)
}

// WeekdayIndex номер дня недели, где понедельник = 0
func WeekdayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// ScheduleForDate splits the rules that apply to date into open windows and blackouts.
// Open date-specific rules replace open weekday rules when at least one exists;
// blackouts from both date and weekday rules always apply.
func ScheduleForDate(rules []*AvailabilityRule, date time.Time) (open, blackouts []*AvailabilityRule) {
	openByDate := make([]*AvailabilityRule, 0)
	openByWeekday := make([]*AvailabilityRule, 0)
	blackouts = make([]*AvailabilityRule, 0)

	for _, rule := range rules {
		byDate := rule.MatchesDate(date)
		if !byDate && !rule.MatchesWeekday(date) {
			continue
		}

		switch {
		case !rule.IsAvailable:
			blackouts = append(blackouts, rule)
		case byDate:
			openByDate = append(openByDate, rule)
		default:
			openByWeekday = append(openByWeekday, rule)
		}
	}

	if len(openByDate) > 0 {
		return openByDate, blackouts
	}
	return openByWeekday, blackouts
}
