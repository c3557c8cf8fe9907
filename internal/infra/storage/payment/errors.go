package payment

import "errors"

var (
	// ErrReferenceNotFound возвращается, когда по ссылке нет записи
	ErrReferenceNotFound = errors.New("payment.repository: reference not found")

	// ErrStorage возвращается при ошибках обращения к Redis
	ErrStorage = errors.New("payment.repository: storage error")

	// ErrEncoding возвращается при ошибках сериализации записи
	ErrEncoding = errors.New("payment.repository: encoding error")
)
