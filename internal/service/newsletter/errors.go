package newsletter

import "errors"

var (
	// ErrAlreadySubscribed возвращается, если email уже подписан
	ErrAlreadySubscribed = errors.New("newsletter: email already subscribed")

	// ErrSubscriberNotFound возвращается, когда активная подписка не найдена
	ErrSubscriberNotFound = errors.New("newsletter: subscriber not found")

	// ErrEmailRequired возвращается, если email не передан
	ErrEmailRequired = errors.New("newsletter: email is required")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("newsletter: internal error")
)
