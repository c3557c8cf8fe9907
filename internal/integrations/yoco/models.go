package yoco

// CheckoutRequest тело запроса на создание checkout в Yoco
type CheckoutRequest struct {
	Amount            int64                  `json:"amount"` // в центах
	Currency          string                 `json:"currency"`
	Metadata          map[string]interface{} `json:"metadata,omitempty"`
	ClientReferenceID string                 `json:"clientReferenceId,omitempty"`
	SuccessURL        string                 `json:"successUrl"`
	CancelURL         string                 `json:"cancelUrl"`
	FailureURL        string                 `json:"failureUrl"`
}

// Checkout ответ Yoco на создание checkout
type Checkout struct {
	ID          string `json:"id"`
	RedirectURL string `json:"redirectUrl"`
	Status      string `json:"status,omitempty"`
}

// WebhookRequest тело регистрации webhook'а
type WebhookRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
