package list_demand

import (
	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	"github.com/m04kA/SMC-ShuttleService/internal/service/demand/models"
)

// ListResponse все рейсы по спросу
type ListResponse struct {
	Requests  []ItemResponse `json:"requests"`
	Threshold int            `json:"threshold"`
}

type ItemResponse struct {
	Date   string              `json:"date"`
	Time   string              `json:"time"`
	Count  int                 `json:"count"`
	Status domain.DemandStatus `json:"status"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP ответ
func FromServiceResponse(list *models.ListResponse) *ListResponse {
	resp := &ListResponse{
		Requests:  make([]ItemResponse, 0, len(list.Items)),
		Threshold: list.Threshold,
	}
	for _, item := range list.Items {
		resp.Requests = append(resp.Requests, ItemResponse{
			Date:   item.Date,
			Time:   item.Time,
			Count:  item.Count,
			Status: item.Status,
		})
	}
	return resp
}
