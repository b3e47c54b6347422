package domain

import (
	"time"

	"github.com/m04kA/studio-service/pkg/types"
)

// TimeRange is a half-open interval [Start, End).
// Ranges that only touch at a boundary do not overlap.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// NewTimeRange создает интервал длительностью d от start
func NewTimeRange(start time.Time, d time.Duration) TimeRange {
	return TimeRange{Start: start, End: start.Add(d)}
}

// ClockRange создает интервал между двумя временами суток на указанную дату
func ClockRange(date time.Time, start, end types.TimeString) TimeRange {
	return TimeRange{Start: start.On(date), End: end.On(date)}
}

// Overlaps проверяет пересечение: a.Start < b.End && b.Start < a.End
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Contains проверяет, что other целиком лежит внутри r
func (r TimeRange) Contains(other TimeRange) bool {
	return !other.Start.Before(r.Start) && !other.End.After(r.End)
}

// Duration длительность интервала
func (r TimeRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// IsValid проверяет, что начало строго раньше конца
func (r TimeRange) IsValid() bool {
	return r.Start.Before(r.End)
}

func mustTime(s string) types.TimeString {
	t, err := types.NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return t
}
