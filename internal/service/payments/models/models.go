package models

import "github.com/m04kA/SMC-ShuttleService/internal/domain"

// CreateCheckoutRequest запрос на создание checkout
type CreateCheckoutRequest struct {
	Amount            float64 // в центах
	Currency          string
	Metadata          map[string]interface{}
	ClientReferenceID string
}

// CreateCheckoutResponse адрес, на который нужно перенаправить клиента
type CreateCheckoutResponse struct {
	ID          string `json:"id"`
	RedirectURL string `json:"redirectUrl"`
}

// WebhookEvent событие Yoco
type WebhookEvent struct {
	Type string      `json:"type"`
	Data WebhookData `json:"data"`
}

// WebhookData полезная нагрузка события
type WebhookData struct {
	ID                string                 `json:"id"`
	CheckoutID        string                 `json:"checkoutId"`
	Status            string                 `json:"status"`
	ClientReferenceID string                 `json:"clientReferenceId"`
	Metadata          map[string]interface{} `json:"metadata"`
}

// WebhookResult итог обработки события
type WebhookResult struct {
	Reference string
	Status    domain.PaymentStatus
	Notified  bool
}
