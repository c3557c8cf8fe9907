package confirm_demand

import "github.com/m04kA/SMC-ShuttleService/internal/domain"

// Config адреса для копий и сводки администратору
type Config struct {
	AdminEmail  string
	ClientEmail string
}

// Request модель запроса на подтверждение рейса
type Request struct {
	Date string
	Time string
}

// Response модель ответа подтверждения
type Response struct {
	Aggregate     *domain.DemandAggregate
	Changed       bool // false, если рейс уже был подтвержден
	Notified      int  // сколько пассажиров получили письмо
	AdminNotified bool
}
