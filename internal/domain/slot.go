package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/studio-service/pkg/types"
)

// SlotOccupancy decides whether an existing booking makes a listed slot unavailable.
type SlotOccupancy string

const (
	// OccupancyOverlap marks a slot taken when its interval overlaps a booking.
	// Listing then agrees with the conflict check at creation.
	OccupancyOverlap SlotOccupancy = "overlap"

	// OccupancyExactStart marks a slot taken only when a booking starts at the same time.
	OccupancyExactStart SlotOccupancy = "exact_start"
)

// ParseSlotOccupancy парсит режим занятости слотов
func ParseSlotOccupancy(s string) (SlotOccupancy, error) {
	switch SlotOccupancy(s) {
	case OccupancyOverlap, OccupancyExactStart:
		return SlotOccupancy(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOccupancy, s)
	}
}

// Occupies сообщает, занимает ли бронирование слот
func (m SlotOccupancy) Occupies(slot, booking TimeRange) bool {
	if m == OccupancyExactStart {
		return slot.Start.Equal(booking.Start)
	}
	return slot.Overlaps(booking)
}

// AvailableSlot a candidate start time on a date with its occupancy state
type AvailableSlot struct {
	Date      time.Time
	Time      types.TimeString
	Available bool
}
