package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/studio-service/internal/api/handlers"
	"github.com/m04kA/studio-service/internal/service/bookings"
	"github.com/m04kA/studio-service/internal/service/bookings/models"
)

const (
	msgInvalidPagination = "Invalid page or page_size parameter"
	msgInvalidStatus     = "Invalid status filter"
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

// Handle GET /api/v1/booking/bookings
// Query params: email, status, page, page_size (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	pagination, err := handlers.ParsePagination(r)
	if err != nil {
		h.logger.Warn("GET /booking/bookings - Invalid pagination: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPagination)
		return
	}

	req := &models.ListBookingsRequest{
		Email:    handlers.QueryString(r, "email"),
		Status:   handlers.QueryString(r, "status"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /booking/bookings - Invalid status filter: %v", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /booking/bookings - Failed to list bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /booking/bookings - Bookings retrieved successfully: count=%d, returned=%d",
		result.Count, len(result.Results))
	handlers.RespondJSON(w, http.StatusOK, result)
}
