package create_checkout

import (
	"encoding/json"
	"strconv"

	"github.com/m04kA/SMC-ShuttleService/internal/service/payments/models"
)

// CheckoutRequest тело запроса. amount в центах, числом или строкой.
type CheckoutRequest struct {
	Amount            json.Number            `json:"amount"`
	Currency          string                 `json:"currency"`
	Metadata          map[string]interface{} `json:"metadata"`
	ClientReferenceID string                 `json:"clientReferenceId"`
}

// ToServiceRequest конвертирует HTTP запрос в запрос к сервису.
// Нечисловая сумма становится нулем и отклоняется сервисом.
func (r *CheckoutRequest) ToServiceRequest() *models.CreateCheckoutRequest {
	amount, err := strconv.ParseFloat(r.Amount.String(), 64)
	if err != nil {
		amount = 0
	}
	return &models.CreateCheckoutRequest{
		Amount:            amount,
		Currency:          r.Currency,
		Metadata:          r.Metadata,
		ClientReferenceID: r.ClientReferenceID,
	}
}
