package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/studio-service/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/studio-service/internal/usecase/get_available_slots"
)

const (
	msgMissingDate = "Date parameter is required"
	msgInvalidDate = "Invalid date format. Use YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking/bookings/available-slots
// Query params: date (required, YYYY-MM-DD), service (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getAvailableSlots.Request{
		Date: r.URL.Query().Get("date"),
	}

	// Нечисловой service считается неизвестной услугой: слоты строятся по длительности по умолчанию
	if serviceStr := handlers.QueryString(r, "service"); serviceStr != nil {
		serviceID, err := strconv.ParseInt(*serviceStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /booking/bookings/available-slots - Unparsable service %q, using default duration", *serviceStr)
		} else {
			req.ServiceID = &serviceID
		}
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrDateRequired):
			h.logger.Warn("GET /booking/bookings/available-slots - Missing date")
			handlers.RespondBadRequest(w, msgMissingDate)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /booking/bookings/available-slots - Invalid date: %s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /booking/bookings/available-slots - Failed to get slots: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /booking/bookings/available-slots - Slots retrieved successfully: date=%s, slots_count=%d",
		req.Date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
