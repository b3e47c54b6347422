package create_order

import "errors"

var (
	// ErrInvalidInput возвращается, когда не указаны данные покупателя или корзина пуста
	ErrInvalidInput = errors.New("create_order: invalid input data")

	// ErrNoValidProducts возвращается, когда в корзине нет ни одного активного товара
	ErrNoValidProducts = errors.New("create_order: no valid products in cart")

	// ErrCouponNotFound возвращается, когда купон с таким кодом не существует
	ErrCouponNotFound = errors.New("create_order: coupon not found")

	// ErrCouponRejected возвращается, когда купон нельзя применить; причина в цепочке ошибок (domain.ErrCoupon*)
	ErrCouponRejected = errors.New("create_order: coupon rejected")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_order: internal error")
)
