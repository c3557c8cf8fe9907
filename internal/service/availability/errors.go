package availability

import "errors"

var (
	// ErrInvalidInput возвращается, если не указаны обязательные поля
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
