package shop

import "errors"

var (
	// ErrProductNotFound возвращается, когда товар не найден
	ErrProductNotFound = errors.New("shop: product not found")

	// ErrOrderNotFound возвращается, когда заказ не найден
	ErrOrderNotFound = errors.New("shop: order not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("shop: internal error")
)
