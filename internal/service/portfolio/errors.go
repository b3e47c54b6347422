package portfolio

import "errors"

var (
	// ErrProjectNotFound возвращается, когда проект не найден
	ErrProjectNotFound = errors.New("portfolio: project not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("portfolio: internal error")
)
