package list_products

import (
	"net/http"

	"github.com/m04kA/studio-service/internal/api/handlers"
	"github.com/m04kA/studio-service/internal/service/shop/models"
)

const msgInvalidQuery = "Invalid query parameters"

type Handler struct {
	service ShopService
	logger  Logger
}

func NewHandler(service ShopService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/shop/products
// Query params: category (slug), featured (bool), page, page_size
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	pagination, err := handlers.ParsePagination(r)
	if err != nil {
		h.logger.Warn("GET /shop/products - Invalid pagination: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	featured, err := handlers.QueryBool(r, "featured")
	if err != nil {
		h.logger.Warn("GET /shop/products - Invalid featured flag: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.ListProducts(r.Context(), &models.ListProductsRequest{
		CategorySlug: handlers.QueryString(r, "category"),
		Featured:     featured,
		Page:         pagination.Page,
		PageSize:     pagination.PageSize,
	})
	if err != nil {
		h.logger.Error("GET /shop/products - Failed to list products: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
