package validate_coupon

import (
	"errors"
	"fmt"
)

var (
	// ErrCouponNotFound возвращается, когда купон с таким кодом не существует
	ErrCouponNotFound = errors.New("validate_coupon: coupon not found")

	// ErrCouponRejected возвращается, когда купон нельзя применить; причина в цепочке ошибок (domain.ErrCoupon*)
	ErrCouponRejected = errors.New("validate_coupon: coupon rejected")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("validate_coupon: invalid input data")

	// ErrCodeRequired возвращается для пустого кода купона (в том числе из одних пробелов)
	ErrCodeRequired = fmt.Errorf("%w: code is required", ErrInvalidInput)

	// ErrNegativeSubtotal возвращается для отрицательной суммы заказа
	ErrNegativeSubtotal = fmt.Errorf("%w: subtotal must not be negative", ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("validate_coupon: internal error")
)
