package get_order

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/studio-service/internal/api/handlers"
	"github.com/m04kA/studio-service/internal/service/shop"
)

const msgNotFound = "Order not found"

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

// Handle GET /api/v1/shop/orders/{orderNumber}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["orderNumber"]

	order, err := h.service.GetOrder(r.Context(), number)
	if err != nil {
		switch {
		case errors.Is(err, shop.ErrOrderNotFound):
			h.logger.Warn("GET /shop/orders/{number} - Order not found: order_number=%s", number)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /shop/orders/{number} - Failed to get order: order_number=%s, error=%v", number, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, order)
}
