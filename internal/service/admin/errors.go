package admin

import "errors"

var (
	// ErrUnauthorized возвращается при неверном PIN
	ErrUnauthorized = errors.New("invalid admin pin")

	// ErrInvalidPin возвращается, если новый PIN не подходит по длине
	ErrInvalidPin = errors.New("new pin must be 4 to 32 characters")
)
