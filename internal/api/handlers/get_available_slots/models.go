package get_available_slots

import (
	"github.com/m04kA/studio-service/internal/domain"
	getAvailableSlots "github.com/m04kA/studio-service/internal/usecase/get_available_slots"
)

// SlotResponse HTTP response model
type SlotResponse struct {
	Date      string `json:"date"` // "2025-03-14"
	Time      string `json:"time"` // "10:00:00"
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) []SlotResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			Date:      slot.Date.Format(domain.DateFormat),
			Time:      slot.Time.WithSeconds(),
			Available: slot.Available,
		})
	}
	return slots
}
