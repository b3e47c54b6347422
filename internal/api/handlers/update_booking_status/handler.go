package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/studio-service/internal/api/handlers"
	"github.com/m04kA/studio-service/internal/service/bookings"
	"github.com/m04kA/studio-service/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgNotFound           = "Booking not found"
	msgInvalidStatus      = "Unknown booking status"
	msgInvalidTransition  = "Status change is not allowed"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/booking/bookings/{bookingNumber}/status (оператор)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["bookingNumber"]

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /booking/bookings/{number}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if errs := handlers.Validate(&req); errs != nil {
		handlers.RespondValidationErrors(w, errs)
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), number, &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /booking/bookings/{number}/status - Booking not found: booking_number=%s", number)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /booking/bookings/{number}/status - Invalid status: %s", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("PATCH /booking/bookings/{number}/status - %v", err)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /booking/bookings/{number}/status - Failed to update status: booking_number=%s, error=%v", number, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /booking/bookings/{number}/status - Status updated: booking_number=%s, status=%s", number, booking.Status)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
