package domain

import "math"

// Fares in ZAR per passenger
const (
	BaseFarePerPassenger = 325
	QueenstownFare       = 280
)

// RouteFares тарифы по маршрутам, если отличаются от базового
var RouteFares = map[RouteID]int{
	RouteMthathaToKingPhalo:    BaseFarePerPassenger,
	RouteKingPhaloToMthatha:    BaseFarePerPassenger,
	RouteQueenstownToKingPhalo: QueenstownFare,
	RouteKingPhaloToQueenstown: QueenstownFare,
}

// GroupDiscount скидка для групп от MinPassengers человек
type GroupDiscount struct {
	MinPassengers int
	Rate          float64
}

// GroupDiscounts отсортированы по возрастанию MinPassengers
var GroupDiscounts = []GroupDiscount{
	{MinPassengers: 5, Rate: 0.05},
	{MinPassengers: 10, Rate: 0.10},
}

// Quote represents a price breakdown for one booking
type Quote struct {
	Route         RouteID
	Passengers    int
	FarePerPerson int
	Subtotal      float64
	Discount      float64
	Total         float64
	TotalCents    int64
}

// CalculateQuote считает стоимость поездки с учетом групповой скидки
func CalculateQuote(route RouteID, passengers int) Quote {
	fare, ok := RouteFares[route]
	if !ok {
		fare = BaseFarePerPassenger
	}

	subtotal := float64(fare * passengers)

	rate := 0.0
	for _, d := range GroupDiscounts {
		if passengers >= d.MinPassengers {
			rate = d.Rate
		}
	}

	discount := subtotal * rate
	total := subtotal - discount

	return Quote{
		Route:         route,
		Passengers:    passengers,
		FarePerPerson: fare,
		Subtotal:      subtotal,
		Discount:      discount,
		Total:         total,
		TotalCents:    int64(math.Round(total * 100)),
	}
}
