package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/studio-service/internal/api/handlers"
	createBooking "github.com/m04kA/studio-service/internal/usecase/create_booking"
)

const (
	msgCreated            = "Booking request submitted successfully! You will receive a confirmation email shortly."
	msgInvalidRequestBody = "Invalid request body"
	msgDateInPast         = "Booking date must be in the future."
	msgSlotNotAvailable   = "This time slot is not available. Please choose another time."
	msgServiceNotFound    = "Service not found"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if errs := handlers.Validate(&req); errs != nil {
		h.logger.Warn("POST /booking/bookings - Validation failed: %v", errs)
		handlers.RespondValidationErrors(w, errs)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /booking/bookings - Date in past: date=%s", req.BookingDate)
			handlers.RespondValidationErrors(w, map[string][]string{"booking_date": {msgDateInPast}})

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /booking/bookings - Slot not available: date=%s, time=%s", req.BookingDate, req.BookingTime)
			handlers.RespondValidationErrors(w, map[string][]string{"non_field_errors": {msgSlotNotAvailable}})

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /booking/bookings - Service not found: service=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /booking/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /booking/bookings - Failed to create booking: email=%s, error=%v", req.CustomerEmail, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking/bookings - Booking created successfully: booking_number=%s",
		result.Booking.BookingNumber)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
