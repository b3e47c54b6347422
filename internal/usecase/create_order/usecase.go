package create_order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/m04kA/studio-service/internal/domain"
	couponRepo "github.com/m04kA/studio-service/internal/infra/storage/coupon"
)

// UseCase use case для оформления заказа
type UseCase struct {
	productRepo  ProductRepository
	couponRepo   CouponRepository
	orderRepo    OrderRepository
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	productRepo ProductRepository,
	couponRepo CouponRepository,
	orderRepo OrderRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		productRepo:  productRepo,
		couponRepo:   couponRepo,
		orderRepo:    orderRepo,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case оформления заказа
// Применение купона и сохранение заказа выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateOrder: email=%s, items=%d, coupon=%q", req.CustomerEmail, len(req.Items), req.CouponCode)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateOrder: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем активные товары из корзины
	products, err := uc.productRepo.GetActiveByIDs(ctx, productIDs(req.Items))
	if err != nil {
		uc.logger.Error("CreateOrder: failed to get products: %v", err)
		return nil, fmt.Errorf("%w: failed to get products: %v", ErrInternal, err)
	}

	// 3. Собираем позиции по текущим ценам
	items := buildItems(req.Items, products)
	if len(items) == 0 {
		uc.logger.Warn("CreateOrder: no valid products in cart")
		return nil, ErrNoValidProducts
	}

	order := &domain.Order{
		OrderNumber:   domain.GenerateOrderNumber(),
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerEmail: domain.NormalizeEmail(req.CustomerEmail),
		Status:        domain.OrderPending,
		Discount:      decimal.Zero,
		Notes:         req.Notes,
		Items:         items,
	}
	order.Subtotal = order.ItemsSubtotal()
	order.Total = order.Subtotal

	code := domain.NormalizeCouponCode(req.CouponCode)

	// 4. Купон и заказ в одной транзакции
	var result *domain.Order
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if code != "" {
			if err := uc.applyCoupon(txCtx, order, code); err != nil {
				return err
			}
		}

		created, err := uc.orderRepo.Create(txCtx, order)
		if err != nil {
			uc.logger.Error("CreateOrder: failed to create order: %v", err)
			return fmt.Errorf("%w: failed to create order: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.IncOrdersCreated()
	if result.CouponCode != nil {
		uc.metrics.IncCouponsRedeemed()
	}

	uc.logger.Info("CreateOrder: successfully created order id=%d number=%s total=%s",
		result.ID, result.OrderNumber, result.Total)

	return &Response{Order: result}, nil
}

// applyCoupon проверяет купон, списывает использование и пересчитывает итог
func (uc *UseCase) applyCoupon(ctx context.Context, order *domain.Order, code string) error {
	// Внутри транзакции строка купона блокируется до её завершения
	coupon, err := uc.couponRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, couponRepo.ErrCouponNotFound) {
			uc.logger.Warn("CreateOrder: coupon %q not found", code)
			return ErrCouponNotFound
		}
		uc.logger.Error("CreateOrder: failed to get coupon %q: %v", code, err)
		return fmt.Errorf("%w: failed to get coupon: %w", ErrInternal, err)
	}

	if err := coupon.Check(uc.timeProvider.Now(), order.Subtotal); err != nil {
		uc.logger.Warn("CreateOrder: coupon %s rejected: %v", coupon.Code, err)
		return fmt.Errorf("%w: %w", ErrCouponRejected, err)
	}

	if err := uc.couponRepo.IncrementUsage(ctx, coupon.ID); err != nil {
		if errors.Is(err, couponRepo.ErrUsageLimitReached) {
			uc.logger.Warn("CreateOrder: coupon %s usage limit reached concurrently", coupon.Code)
			return fmt.Errorf("%w: %w", ErrCouponRejected, domain.ErrCouponUsageExceeded)
		}
		uc.logger.Error("CreateOrder: failed to increment coupon usage: %v", err)
		return fmt.Errorf("%w: failed to increment coupon usage: %w", ErrInternal, err)
	}

	order.Discount = coupon.Discount(order.Subtotal)
	order.Total = order.Subtotal.Sub(order.Discount)
	order.CouponCode = &coupon.Code

	return nil
}
