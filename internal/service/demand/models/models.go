package models

import "github.com/m04kA/SMC-ShuttleService/internal/domain"

// SubmitRequest заявка пассажиров на рейс по спросу
type SubmitRequest struct {
	Route      domain.RouteID
	Date       string
	Time       string
	Passengers int
	Name       string
	Email      string
	Phone      string
}

// SubmitResponse текущий счетчик ключа после добавления заявки
type SubmitResponse struct {
	Count     int
	Threshold int
}

// StatsResponse счетчик и статус одного ключа
type StatsResponse struct {
	Count     int
	Threshold int
	Status    domain.DemandStatus
}

// ListResponse все ключи, отсортированные по date+time
type ListResponse struct {
	Items     []*domain.DemandAggregate
	Threshold int
}

// ResolveResponse результат подтверждения или отклонения
type ResolveResponse struct {
	Aggregate *domain.DemandAggregate
	// Changed false, если статус уже был установлен ранее
	Changed bool
}
