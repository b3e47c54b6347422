package create_availability_rule

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/studio-service/internal/api/handlers"
	"github.com/m04kA/studio-service/internal/service/availability"
	"github.com/m04kA/studio-service/internal/service/availability/models"
)

const msgInvalidRequestBody = "Invalid request body"

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking/availability (оператор)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if errs := handlers.Validate(&req); errs != nil {
		handlers.RespondValidationErrors(w, errs)
		return
	}

	rule, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /booking/availability - Invalid rule: %v", err)
			handlers.RespondBadRequest(w, userMessage(err))

		default:
			h.logger.Error("POST /booking/availability - Failed to create rule: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking/availability - Rule created successfully: id=%d", rule.ID)
	handlers.RespondJSON(w, http.StatusCreated, rule)
}

// userMessage последняя часть цепочки ошибки, без префиксов пакетов
func userMessage(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}
