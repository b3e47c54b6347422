package validate_coupon

import (
	"errors"
	"net/http"

	"github.com/m04kA/studio-service/internal/api/handlers"
	validateCoupon "github.com/m04kA/studio-service/internal/usecase/validate_coupon"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgCouponNotFound     = "Invalid coupon code"
	msgCodeRequired       = "Coupon code is required"
	msgInvalidSubtotal    = "Subtotal must not be negative"
	msgInvalidInput       = "Invalid coupon request"
)

type Handler struct {
	useCase ValidateCouponUseCase
	logger  Logger
}

func NewHandler(useCase ValidateCouponUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/shop/coupons/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateCouponRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /shop/coupons/validate - Invalid request body: %v", err)
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
		case errors.Is(err, validateCoupon.ErrCouponNotFound):
			h.logger.Warn("POST /shop/coupons/validate - Coupon not found: code=%s", req.Code)
			handlers.RespondNotFound(w, msgCouponNotFound)

		case errors.Is(err, validateCoupon.ErrCouponRejected):
			h.logger.Warn("POST /shop/coupons/validate - Coupon rejected: code=%s, reason=%v", req.Code, err)
			handlers.RespondBadRequest(w, validateCoupon.Message(err))

		case errors.Is(err, validateCoupon.ErrCodeRequired):
			handlers.RespondBadRequest(w, msgCodeRequired)

		case errors.Is(err, validateCoupon.ErrNegativeSubtotal):
			handlers.RespondBadRequest(w, msgInvalidSubtotal)

		case errors.Is(err, validateCoupon.ErrInvalidInput):
			h.logger.Warn("POST /shop/coupons/validate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /shop/coupons/validate - Failed to validate coupon: code=%s, error=%v", req.Code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /shop/coupons/validate - Coupon applied: code=%s, discount=%s", result.Code, result.Discount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
