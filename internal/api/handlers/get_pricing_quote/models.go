package get_pricing_quote

import "github.com/m04kA/SMC-ShuttleService/internal/domain"

// QuoteResponse расчет стоимости в ZAR
type QuoteResponse struct {
	Route         string  `json:"route"`
	Passengers    int     `json:"passengers"`
	FarePerPerson int     `json:"farePerPerson"`
	Subtotal      float64 `json:"subtotal"`
	Discount      float64 `json:"discount"`
	Total         float64 `json:"total"`
	TotalCents    int64   `json:"totalCents"`
	Currency      string  `json:"currency"`
}

// FromDomainQuote конвертирует доменную модель в HTTP ответ
func FromDomainQuote(q domain.Quote) *QuoteResponse {
	return &QuoteResponse{
		Route:         string(q.Route),
		Passengers:    q.Passengers,
		FarePerPerson: q.FarePerPerson,
		Subtotal:      q.Subtotal,
		Discount:      q.Discount,
		Total:         q.Total,
		TotalCents:    q.TotalCents,
		Currency:      domain.DefaultCurrency,
	}
}
