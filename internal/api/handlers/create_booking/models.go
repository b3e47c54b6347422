package create_booking

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/studio-service/internal/service/bookings/models"
	createBooking "github.com/m04kA/studio-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID     int64            `json:"service" validate:"required,gt=0"`
	CustomerName  string           `json:"customer_name" validate:"required,max=200"`
	CustomerEmail string           `json:"customer_email" validate:"required,email"`
	CustomerPhone string           `json:"customer_phone" validate:"required,max=50"`
	BookingDate   string           `json:"booking_date" validate:"required,datetime=2006-01-02"` // "2025-03-14"
	BookingTime   string           `json:"booking_time" validate:"required"`                     // "10:00" или "10:00:00"
	DurationHours *decimal.Decimal `json:"duration_hours"`
	Location      string           `json:"location" validate:"max=500"`
	Message       string           `json:"message"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Message string                  `json:"message"`
	Booking *models.BookingResponse `json:"booking"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		ServiceID:     r.ServiceID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Date:          r.BookingDate,
		Time:          r.BookingTime,
		DurationHours: r.DurationHours,
		Location:      r.Location,
		Message:       r.Message,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Message: msgCreated,
		Booking: models.FromDomainBooking(resp.Booking),
	}
}
