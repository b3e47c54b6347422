package list_projects

import (
	"net/http"

	"github.com/m04kA/studio-service/internal/api/handlers"
	"github.com/m04kA/studio-service/internal/service/portfolio/models"
)

const msgInvalidQuery = "Invalid query parameters"

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

// Handle GET /api/v1/portfolio/projects
// Query params: category (slug), featured (bool), page, page_size
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	pagination, err := handlers.ParsePagination(r)
	if err != nil {
		h.logger.Warn("GET /portfolio/projects - Invalid pagination: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	featured, err := handlers.QueryBool(r, "featured")
	if err != nil {
		h.logger.Warn("GET /portfolio/projects - Invalid featured flag: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.ListProjects(r.Context(), &models.ListProjectsRequest{
		CategorySlug: handlers.QueryString(r, "category"),
		Featured:     featured,
		Page:         pagination.Page,
		PageSize:     pagination.PageSize,
	})
	if err != nil {
		h.logger.Error("GET /portfolio/projects - Failed to list projects: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
