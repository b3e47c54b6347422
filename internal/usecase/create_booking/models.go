package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/studio-service/internal/domain"
	"github.com/m04kA/studio-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ServiceID     int64            // ID услуги
	CustomerName  string           // Имя клиента
	CustomerEmail string           // Email клиента
	CustomerPhone string           // Телефон клиента
	Date          string           // Дата в формате YYYY-MM-DD
	Time          string           // Время начала "HH:MM" или "HH:MM:SS"
	DurationHours *decimal.Decimal // Длительность в часах (по умолчанию из услуги)
	Location      string           // Место съемки (опционально)
	Message       string           // Сообщение (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
}

// slotRequest дата и время из запроса после разбора
type slotRequest struct {
	date  time.Time
	start types.TimeString
}
