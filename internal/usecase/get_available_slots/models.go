package get_available_slots

import "github.com/m04kA/SMC-ShuttleService/internal/domain"

// Request модель запроса доступности рейсов маршрута на дату
type Request struct {
	Date  string         // YYYY-MM-DD
	Route domain.RouteID // направление
}

// Response модель ответа с расписанием маршрута на дату
type Response struct {
	Date        string
	Route       domain.RouteID
	DemandGated bool // рейс выполняется только при достаточном спросе
	Offerable   bool // маршрут сейчас предлагается клиентам
	DateBlocked bool // весь день закрыт
	Slots       []Slot
}

// Slot модель отправления
type Slot struct {
	Time     string // метка отправления ("6:00 AM")
	Blocked  bool   // закрыт администратором (слот или весь день)
	Departed bool   // отправление сегодня уже прошло
	Demand   *Demand
}

// Available returns true if the slot can be booked
func (s Slot) Available() bool {
	return !s.Blocked && !s.Departed
}

// Demand текущий спрос на рейс по спросу
type Demand struct {
	Count     int
	Threshold int
	Status    domain.DemandStatus
}
