package domain

import "time"

// PaymentStatus represents the last known status of a checkout attempt
type PaymentStatus string

const (
	PaymentStatusCreated   PaymentStatus = "created"
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusUnknown   PaymentStatus = "unknown"
)

// PaymentReference связывает клиентскую ссылку с попыткой оплаты
type PaymentReference struct {
	Reference  string        `json:"reference"`
	Status     PaymentStatus `json:"status"`
	CheckoutID string        `json:"checkoutId,omitempty"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}
