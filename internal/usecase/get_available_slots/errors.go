package get_available_slots

import "errors"

var (
	// ErrUnknownRoute возвращается для маршрута вне расписания
	ErrUnknownRoute = errors.New("unknown route")

	// ErrInvalidDate возвращается при некорректной дате или дате в прошлом
	ErrInvalidDate = errors.New("invalid travel date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
