package list_blocked

import "github.com/m04kA/SMC-ShuttleService/internal/service/availability/models"

// BlockedResponse все блокировки календаря
type BlockedResponse struct {
	Blocked []string      `json:"blocked"`
	Slots   []SlotPayload `json:"slots"`
}

type SlotPayload struct {
	Date  string `json:"date"`
	Route string `json:"route"`
	Time  string `json:"time"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP ответ
func FromServiceResponse(list *models.BlockedList) *BlockedResponse {
	resp := &BlockedResponse{
		Blocked: make([]string, 0, len(list.Dates)),
		Slots:   make([]SlotPayload, 0, len(list.Slots)),
	}
	resp.Blocked = append(resp.Blocked, list.Dates...)
	for _, s := range list.Slots {
		resp.Slots = append(resp.Slots, SlotPayload{Date: s.Date, Route: string(s.Route), Time: s.Time})
	}
	return resp
}
