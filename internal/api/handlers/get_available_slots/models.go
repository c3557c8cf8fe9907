package get_available_slots

import (
	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ShuttleService/internal/usecase/get_available_slots"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date        string          `json:"date"`
	Route       string          `json:"route"`
	DemandGated bool            `json:"demandGated"`
	Offerable   bool            `json:"offerable"`
	DateBlocked bool            `json:"dateBlocked"`
	Slots       []AvailableSlot `json:"slots"`
}

// AvailableSlot модель отправления
type AvailableSlot struct {
	Time      string      `json:"time"`
	Blocked   bool        `json:"blocked"`
	Departed  bool        `json:"departed"`
	Available bool        `json:"available"`
	Demand    *SlotDemand `json:"demand,omitempty"`
}

// SlotDemand спрос на рейс по спросу
type SlotDemand struct {
	Count     int                 `json:"count"`
	Threshold int                 `json:"threshold"`
	Status    domain.DemandStatus `json:"status"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailabilityResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Time:      slot.Time,
			Blocked:   slot.Blocked,
			Departed:  slot.Departed,
			Available: slot.Available(),
		}
		if slot.Demand != nil {
			slots[i].Demand = &SlotDemand{
				Count:     slot.Demand.Count,
				Threshold: slot.Demand.Threshold,
				Status:    slot.Demand.Status,
			}
		}
	}

	return &AvailabilityResponse{
		Date:        resp.Date,
		Route:       string(resp.Route),
		DemandGated: resp.DemandGated,
		Offerable:   resp.Offerable,
		DateBlocked: resp.DateBlocked,
		Slots:       slots,
	}
}
