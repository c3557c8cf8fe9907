package sync_calendar

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUnknownSource возвращается для источника, отличного от ics и graph
	ErrUnknownSource = errors.New("unknown calendar source")

	// ErrCalendarUnavailable возвращается, когда календарь не настроен или не ответил
	ErrCalendarUnavailable = errors.New("calendar unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
