package get_available_slots

import "errors"

var (
	// ErrDateRequired возвращается, когда дата не передана
	ErrDateRequired = errors.New("get_available_slots: date is required")

	// ErrInvalidDate возвращается, когда дата не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("get_available_slots: invalid date format")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
