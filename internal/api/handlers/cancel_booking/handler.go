package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/studio-service/internal/api/handlers"
	"github.com/m04kA/studio-service/internal/service/bookings"
)

const (
	msgNotFound     = "Booking not found"
	msgCannotCancel = "This booking can no longer be cancelled"
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

// Handle PATCH /api/v1/booking/bookings/{bookingNumber}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["bookingNumber"]

	booking, err := h.service.Cancel(r.Context(), number)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /booking/bookings/{number}/cancel - Booking not found: booking_number=%s", number)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("PATCH /booking/bookings/{number}/cancel - Cannot cancel: booking_number=%s", number)
			handlers.RespondBadRequest(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /booking/bookings/{number}/cancel - Failed to cancel booking: booking_number=%s, error=%v", number, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /booking/bookings/{number}/cancel - Booking cancelled successfully: booking_number=%s", number)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
