package submit_contact

import (
	"net/http"

	"github.com/m04kA/studio-service/internal/api/handlers"
	"github.com/m04kA/studio-service/internal/service/portfolio/models"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgThankYou           = "Thank you for your message! I will get back to you soon."
)

type Handler struct {
	service PortfolioService
	logger  Logger
}

func NewHandler(service PortfolioService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/portfolio/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /portfolio/contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if errs := handlers.Validate(&req); errs != nil {
		handlers.RespondValidationErrors(w, errs)
		return
	}

	if err := h.service.SubmitContact(r.Context(), &req); err != nil {
		h.logger.Error("POST /portfolio/contact - Failed to save submission: email=%s, error=%v", req.Email, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /portfolio/contact - Submission received: email=%s", req.Email)
	handlers.RespondMessage(w, http.StatusCreated, msgThankYou)
}
