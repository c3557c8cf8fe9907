package remove_calendar_blocks

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrNotConfigured возвращается, если Graph не настроен
	ErrNotConfigured = errors.New("graph is not configured")

	// ErrCalendarUnavailable возвращается, когда календарь не ответил
	ErrCalendarUnavailable = errors.New("calendar unavailable")
)
