package validate_coupon

import (
	"github.com/shopspring/decimal"

	validateCoupon "github.com/m04kA/studio-service/internal/usecase/validate_coupon"
)

// ValidateCouponRequest HTTP request model
type ValidateCouponRequest struct {
	Code     string          `json:"code" validate:"required,max=50"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// ValidateCouponResponse HTTP response model
type ValidateCouponResponse struct {
	Valid         bool   `json:"valid"`
	Code          string `json:"code"`
	DiscountType  string `json:"discount_type"`
	DiscountValue string `json:"discount_value"`
	Subtotal      string `json:"subtotal"`
	Discount      string `json:"discount"`
	Total         string `json:"total"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidateCouponRequest) ToUseCaseRequest() *validateCoupon.Request {
	return &validateCoupon.Request{
		Code:     r.Code,
		Subtotal: r.Subtotal,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *validateCoupon.Response) *ValidateCouponResponse {
	return &ValidateCouponResponse{
		Valid:         true,
		Code:          resp.Code,
		DiscountType:  string(resp.DiscountType),
		DiscountValue: resp.DiscountValue.StringFixed(2),
		Subtotal:      resp.Subtotal.StringFixed(2),
		Discount:      resp.Discount.StringFixed(2),
		Total:         resp.Total.StringFixed(2),
	}
}
