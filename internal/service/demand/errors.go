package demand

import "errors"

var (
	// ErrInvalidInput возвращается, если не заполнены обязательные поля заявки
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDemandNotFound возвращается, когда по (date, time) не было заявок
	ErrDemandNotFound = errors.New("demand not found")

	// ErrAlreadyResolved возвращается при попытке изменить итоговый статус
	ErrAlreadyResolved = errors.New("demand already resolved")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
