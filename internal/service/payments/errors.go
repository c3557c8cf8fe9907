package payments

import "errors"

var (
	// ErrInvalidAmount возвращается для отсутствующей или некорректной суммы
	ErrInvalidAmount = errors.New("payments.service: invalid or missing amount (cents)")

	// ErrNotConfigured возвращается, если нет секретного ключа и не включен тестовый режим
	ErrNotConfigured = errors.New("payments.service: missing YOCO_SECRET_KEY env")

	// ErrUpstream возвращается, когда платежный шлюз отклонил запрос или недоступен
	ErrUpstream = errors.New("payments.service: upstream error")

	// ErrReferenceNotFound возвращается для неизвестной ссылки
	ErrReferenceNotFound = errors.New("payments.service: reference not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("payments.service: internal error")
)
