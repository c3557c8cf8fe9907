package resend

import "errors"

var (
	// ErrNotConfigured возвращается, если не заданы API ключ или отправитель
	ErrNotConfigured = errors.New("resend client: not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("resend client: internal error")

	// ErrUpstream возвращается, когда Resend ответил не 2xx или недоступен
	ErrUpstream = errors.New("resend client: upstream error")
)
