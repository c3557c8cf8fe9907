package ics

import "errors"

var (
	// ErrNotConfigured возвращается, если адрес фида не задан
	ErrNotConfigured = errors.New("ics client: feed url is not configured")

	// ErrInvalidURL возвращается для адреса без схемы http(s)
	ErrInvalidURL = errors.New("ics client: invalid feed url")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("ics client: internal error")

	// ErrUpstream возвращается, когда фид недоступен или ответил не 2xx
	ErrUpstream = errors.New("ics client: upstream error")

	// ErrInvalidResponse возвращается, если тело ответа не является iCalendar
	ErrInvalidResponse = errors.New("ics client: invalid calendar")
)
