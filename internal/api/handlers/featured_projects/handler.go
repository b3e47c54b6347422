package featured_projects

import (
	"net/http"

	"github.com/m04kA/studio-service/internal/api/handlers"
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

// Handle GET /api/v1/portfolio/projects/featured
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.FeaturedProjects(r.Context())
	if err != nil {
		h.logger.Error("GET /portfolio/projects/featured - Failed to get featured projects: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, projects)
}
