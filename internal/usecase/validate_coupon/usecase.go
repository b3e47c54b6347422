package validate_coupon

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/studio-service/internal/domain"
	couponRepo "github.com/m04kA/studio-service/internal/infra/storage/coupon"
)

// UseCase use case для проверки купона и расчета скидки
type UseCase struct {
	couponRepo   CouponRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(couponRepo CouponRepository, logger Logger) *UseCase {
	return &UseCase{
		couponRepo:   couponRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute проверяет купон для суммы заказа
// Счетчик использований не изменяется: купон списывается только при создании заказа
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ValidateCoupon: code=%s, subtotal=%s", req.Code, req.Subtotal)

	// 1. Валидация входных данных
	if strings.TrimSpace(req.Code) == "" {
		return nil, ErrCodeRequired
	}
	if req.Subtotal.IsNegative() {
		return nil, ErrNegativeSubtotal
	}

	// 2. Получаем купон
	coupon, err := uc.couponRepo.GetByCode(ctx, req.Code)
	if err != nil {
		if errors.Is(err, couponRepo.ErrCouponNotFound) {
			uc.logger.Warn("ValidateCoupon: coupon %q not found", req.Code)
			return nil, ErrCouponNotFound
		}
		uc.logger.Error("ValidateCoupon: failed to get coupon %q: %v", req.Code, err)
		return nil, fmt.Errorf("%w: failed to get coupon: %v", ErrInternal, err)
	}

	// 3. Проверяем срок действия, активность, лимит и минимальную сумму
	if err := coupon.Check(uc.timeProvider.Now(), req.Subtotal); err != nil {
		uc.logger.Warn("ValidateCoupon: coupon %s rejected: %v", coupon.Code, err)
		return nil, fmt.Errorf("%w: %w", ErrCouponRejected, err)
	}

	// 4. Считаем скидку
	discount := coupon.Discount(req.Subtotal)

	return &Response{
		Code:          coupon.Code,
		DiscountType:  coupon.DiscountType,
		DiscountValue: coupon.DiscountValue,
		Subtotal:      req.Subtotal,
		Discount:      discount,
		Total:         req.Subtotal.Sub(discount),
	}, nil
}

// Message текст причины отказа для клиента
func Message(err error) string {
	switch {
	case errors.Is(err, domain.ErrCouponExpired):
		return "This coupon has expired."
	case errors.Is(err, domain.ErrCouponInactive):
		return "This coupon is no longer active."
	case errors.Is(err, domain.ErrCouponNotYetValid):
		return "This coupon is not valid yet."
	case errors.Is(err, domain.ErrCouponUsageExceeded):
		return "This coupon has reached its usage limit."
	case errors.Is(err, domain.ErrCouponBelowMinimum):
		return "Order subtotal is below the minimum purchase for this coupon."
	default:
		return "Invalid coupon."
	}
}
