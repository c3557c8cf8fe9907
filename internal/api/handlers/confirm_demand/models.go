package confirm_demand

import "github.com/m04kA/SMC-ShuttleService/internal/domain"

// ResolveRequest тело запроса
type ResolveRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// ResolveResponse ответ подтверждения
type ResolveResponse struct {
	OK       bool                `json:"ok"`
	Status   domain.DemandStatus `json:"status"`
	Count    int                 `json:"count"`
	Notified int                 `json:"notified"`
}
