package domain

import "errors"

var (
	// ErrUnknownOccupancy возвращается при неизвестном режиме занятости слотов
	ErrUnknownOccupancy = errors.New("domain: unknown slot occupancy mode")

	// ErrInvalidRule возвращается при некорректном правиле доступности
	ErrInvalidRule = errors.New("domain: invalid availability rule")

	// ErrCouponExpired срок действия купона истёк
	ErrCouponExpired = errors.New("domain: coupon has expired")

	// ErrCouponInactive купон выключен
	ErrCouponInactive = errors.New("domain: coupon is not active")

	// ErrCouponNotYetValid купон ещё не начал действовать
	ErrCouponNotYetValid = errors.New("domain: coupon is not yet valid")

	// ErrCouponUsageExceeded достигнут лимит использований купона
	ErrCouponUsageExceeded = errors.New("domain: coupon usage limit reached")

	// ErrCouponBelowMinimum сумма заказа меньше минимальной для купона
	ErrCouponBelowMinimum = errors.New("domain: subtotal is below coupon minimum purchase")
)
