package subscribe

import (
	"errors"
	"net/http"

	"github.com/m04kA/studio-service/internal/api/handlers"
	"github.com/m04kA/studio-service/internal/service/newsletter"
	"github.com/m04kA/studio-service/internal/service/newsletter/models"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgSubscribed         = "Successfully subscribed to newsletter!"
	msgResubscribed       = "Successfully resubscribed to newsletter!"
	msgAlreadySubscribed  = "This email is already subscribed to our newsletter."
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

// Handle POST /api/v1/newsletter/subscribe
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SubscribeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /newsletter/subscribe - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if errs := handlers.Validate(&req); errs != nil {
		handlers.RespondValidationErrors(w, errs)
		return
	}

	result, err := h.service.Subscribe(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, newsletter.ErrAlreadySubscribed):
			handlers.RespondValidationErrors(w, map[string][]string{"email": {msgAlreadySubscribed}})

		default:
			h.logger.Error("POST /newsletter/subscribe - Failed to subscribe: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if !result.Created {
		handlers.RespondMessage(w, http.StatusOK, msgResubscribed)
		return
	}
	handlers.RespondMessage(w, http.StatusCreated, msgSubscribed)
}
