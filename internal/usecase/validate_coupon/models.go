package validate_coupon

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/studio-service/internal/domain"
)

// Request модель запроса на проверку купона
type Request struct {
	Code     string
	Subtotal decimal.Decimal
}

// Response модель ответа с рассчитанной скидкой
type Response struct {
	Code          string
	DiscountType  domain.DiscountType
	DiscountValue decimal.Decimal
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
}
