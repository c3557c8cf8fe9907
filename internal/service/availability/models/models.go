package models

import "github.com/m04kA/SMC-ShuttleService/internal/domain"

// SlotRequest запрос на блокировку или разблокировку слота
type SlotRequest struct {
	Date  string
	Route domain.RouteID
	Time  string
}

// ToDomainSlot конвертирует запрос в доменный слот
func (r *SlotRequest) ToDomainSlot() domain.BlockedSlot {
	return domain.BlockedSlot{
		Date:  domain.TrimDate(r.Date),
		Route: r.Route,
		Time:  r.Time,
	}
}

// BlockedList все текущие блокировки
type BlockedList struct {
	Dates []string
	Slots []domain.BlockedSlot
}

// IsDateBlocked returns true if the whole date is blocked
func (l *BlockedList) IsDateBlocked(date string) bool {
	for _, d := range l.Dates {
		if d == date {
			return true
		}
	}
	return false
}

// IsSlotBlocked returns true if the slot or its whole date is blocked
func (l *BlockedList) IsSlotBlocked(date string, route domain.RouteID, label string) bool {
	if l.IsDateBlocked(date) {
		return true
	}
	key := domain.BlockedSlot{Date: date, Route: route, Time: label}.Key()
	for _, s := range l.Slots {
		if s.Key() == key {
			return true
		}
	}
	return false
}
