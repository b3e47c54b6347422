package unsubscribe

import (
	"errors"
	"net/http"

	"github.com/m04kA/studio-service/internal/api/handlers"
	"github.com/m04kA/studio-service/internal/service/newsletter"
	"github.com/m04kA/studio-service/internal/service/newsletter/models"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgUnsubscribed       = "Successfully unsubscribed from newsletter."
	msgNotFound           = "Subscriber not found"
)

type Handler struct {
	service NewsletterService
	logger  Logger
}

func NewHandler(service NewsletterService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/newsletter/unsubscribe
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UnsubscribeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /newsletter/unsubscribe - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if errs := handlers.Validate(&req); errs != nil {
		handlers.RespondValidationErrors(w, errs)
		return
	}

	if err := h.service.Unsubscribe(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, newsletter.ErrSubscriberNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /newsletter/unsubscribe - Failed to unsubscribe: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondMessage(w, http.StatusOK, msgUnsubscribed)
}
