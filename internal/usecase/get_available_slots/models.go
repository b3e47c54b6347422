package get_available_slots

import (
	"time"

	"github.com/m04kA/studio-service/internal/domain"
	"github.com/m04kA/studio-service/pkg/types"
)

// Settings параметры календаря из конфигурации
type Settings struct {
	DefaultDuration    time.Duration    // Длительность, если услуга не указана или не найдена
	Step               time.Duration    // Шаг между кандидатами внутри окна
	DefaultWindowStart types.TimeString // Окно по умолчанию, если на дату нет правил
	DefaultWindowEnd   types.TimeString
	Occupancy          domain.SlotOccupancy // Как бронирование занимает слот
	Location           *time.Location       // Часовой пояс студии
}

// Request модель запроса на получение слотов
type Request struct {
	Date      string // Дата в формате YYYY-MM-DD
	ServiceID *int64 // ID услуги (опционально)
}

// Response модель ответа со списком слотов
type Response struct {
	Date  time.Time
	Slots []domain.AvailableSlot
}
