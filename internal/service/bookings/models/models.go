package models

import (
	"errors"
	"time"

	"github.com/m04kA/studio-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest фильтры и пагинация списка бронирований
type ListBookingsRequest struct {
	Email    *string
	Status   *string
	Page     int
	PageSize int
}

// UpdateStatusRequest запрос оператора на смену статуса
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64   `json:"id"`
	BookingNumber string  `json:"booking_number"`
	ServiceID     *int64  `json:"service"`
	ServiceName   *string `json:"service_name"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone string  `json:"customer_phone"`
	BookingDate   string  `json:"booking_date"` // "2025-03-14"
	BookingTime   string  `json:"booking_time"` // "10:00:00"
	DurationHours string  `json:"duration_hours"`
	Location      string  `json:"location"`
	Message       string  `json:"message"`
	Status        string  `json:"status"`
	Price         *string `json:"price"`

	CreatedAt   time.Time  `json:"created_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

// BookingListResponse страница бронирований
type BookingListResponse struct {
	Count   int               `json:"count"`
	Results []BookingResponse `json:"results"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:            b.ID,
		BookingNumber: b.BookingNumber,
		ServiceID:     b.ServiceID,
		ServiceName:   b.ServiceName,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		BookingDate:   b.BookingDate.Format(domain.DateFormat),
		BookingTime:   b.BookingTime.WithSeconds(),
		DurationHours: b.DurationHours.StringFixed(1),
		Location:      b.Location,
		Message:       b.Message,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		ConfirmedAt:   b.ConfirmedAt,
		CancelledAt:   b.CancelledAt,
	}

	if b.Price != nil {
		price := b.Price.StringFixed(2)
		resp.Price = &price
	}

	return resp
}

// FromDomainBookingList конвертирует страницу domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking, count int) *BookingListResponse {
	resp := &BookingListResponse{
		Count:   count,
		Results: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Results = append(resp.Results, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !domain.IsValidBookingStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
