package create_order

import (
	"errors"
	"net/http"

	"github.com/m04kA/studio-service/internal/api/handlers"
	"github.com/m04kA/studio-service/internal/service/shop/models"
	createOrder "github.com/m04kA/studio-service/internal/usecase/create_order"
	validateCoupon "github.com/m04kA/studio-service/internal/usecase/validate_coupon"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingDetails     = "Please provide customer details and cart items"
	msgNoValidProducts    = "No valid products in cart"
	msgInvalidCoupon      = "Invalid coupon code"
)

type Handler struct {
	useCase CreateOrderUseCase
	logger  Logger
}

func NewHandler(useCase CreateOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/shop/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /shop/orders - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if errs := handlers.Validate(&req); errs != nil {
		handlers.RespondValidationErrors(w, errs)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createOrder.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingDetails)

		case errors.Is(err, createOrder.ErrNoValidProducts):
			h.logger.Warn("POST /shop/orders - No valid products: email=%s", req.CustomerEmail)
			handlers.RespondBadRequest(w, msgNoValidProducts)

		case errors.Is(err, createOrder.ErrCouponNotFound):
			h.logger.Warn("POST /shop/orders - Coupon not found: code=%s", req.CouponCode)
			handlers.RespondBadRequest(w, msgInvalidCoupon)

		case errors.Is(err, createOrder.ErrCouponRejected):
			h.logger.Warn("POST /shop/orders - Coupon rejected: code=%s, reason=%v", req.CouponCode, err)
			handlers.RespondBadRequest(w, validateCoupon.Message(err))

		default:
			h.logger.Error("POST /shop/orders - Failed to create order: email=%s, error=%v", req.CustomerEmail, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /shop/orders - Order created: order_number=%s, total=%s", result.Order.OrderNumber, result.Order.Total)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainOrder(result.Order))
}
