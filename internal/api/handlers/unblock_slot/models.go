package unblock_slot

import (
	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	"github.com/m04kA/SMC-ShuttleService/internal/service/availability/models"
)

// SlotRequest тело запроса
type SlotRequest struct {
	Date  string `json:"date"`
	Route string `json:"route"`
	Time  string `json:"time"`
}

// ToServiceRequest конвертирует HTTP запрос в запрос к сервису
func (r *SlotRequest) ToServiceRequest() *models.SlotRequest {
	return &models.SlotRequest{
		Date:  r.Date,
		Route: domain.RouteID(r.Route),
		Time:  r.Time,
	}
}
