package confirm_demand

import "errors"

var (
	// ErrDemandNotFound возвращается, когда по (date, time) не было заявок
	ErrDemandNotFound = errors.New("demand not found")

	// ErrAlreadyResolved возвращается, если рейс уже отклонен
	ErrAlreadyResolved = errors.New("demand already resolved")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
