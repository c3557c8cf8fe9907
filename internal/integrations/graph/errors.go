package graph

import "errors"

var (
	// ErrNotConfigured возвращается, если не заданы учетные данные или UPN
	ErrNotConfigured = errors.New("graph client: not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("graph client: internal error")

	// ErrUpstream возвращается, когда Graph ответил не 2xx или недоступен
	ErrUpstream = errors.New("graph client: upstream error")

	// ErrInvalidResponse возвращается при некорректном ответе от Graph
	ErrInvalidResponse = errors.New("graph client: invalid response")
)
