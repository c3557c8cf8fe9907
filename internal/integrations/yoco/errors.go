package yoco

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured возвращается, если не задан секретный ключ
	ErrNotConfigured = errors.New("yoco client: secret key is not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("yoco client: internal error")

	// ErrUpstream возвращается, когда Yoco ответил не 2xx
	ErrUpstream = errors.New("yoco client: upstream error")

	// ErrInvalidResponse возвращается при некорректном ответе от Yoco
	ErrInvalidResponse = errors.New("yoco client: invalid response")
)

// UpstreamError ответ Yoco с кодом не 2xx. Body содержит разобранное тело ответа.
type UpstreamError struct {
	StatusCode int
	Body       interface{}
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%v: unexpected status code %d: %v", ErrUpstream, e.StatusCode, e.Body)
}

func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}
