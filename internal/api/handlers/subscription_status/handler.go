package subscription_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/studio-service/internal/api/handlers"
	"github.com/m04kA/studio-service/internal/service/newsletter"
)

const msgEmailRequired = "Email parameter is required"

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

// Handle GET /api/v1/newsletter/status?email=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	status, err := h.service.Status(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, newsletter.ErrEmailRequired):
			handlers.RespondBadRequest(w, msgEmailRequired)

		default:
			h.logger.Error("GET /newsletter/status - Failed to get status: email=%s, error=%v", email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, status)
}
