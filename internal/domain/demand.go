package domain

import "time"

// DemandStatus represents the status of a demand-gated trip
type DemandStatus string

const (
	DemandStatusUnknown   DemandStatus = "unknown"
	DemandStatusPending   DemandStatus = "pending"
	DemandStatusConfirmed DemandStatus = "confirmed"
	DemandStatusDeclined  DemandStatus = "declined"
)

// IsResolved returns true if an admin has already confirmed or declined the trip
func (s DemandStatus) IsResolved() bool {
	return s == DemandStatusConfirmed || s == DemandStatusDeclined
}

// DemandKey identifies one demand-gated departure
type DemandKey struct {
	Date string
	Time string
}

// String returns the store key "date|time"
func (k DemandKey) String() string {
	return k.Date + "|" + k.Time
}

// SortKey returns the list ordering key: plain concatenation of date and time label
func (k DemandKey) SortKey() string {
	return k.Date + k.Time
}

// DemandRequest represents one passenger party's request for a demand-gated trip
type DemandRequest struct {
	ID         string
	Route      RouteID
	Date       string
	Time       string
	Passengers int
	Name       string
	Email      string
	Phone      string
	CreatedAt  time.Time
}

// Key returns the demand key the request belongs to
func (r *DemandRequest) Key() DemandKey {
	return DemandKey{Date: r.Date, Time: r.Time}
}

// DemandAggregate represents the running total for one demand key
type DemandAggregate struct {
	Date   string
	Time   string
	Count  int
	Status DemandStatus
}

// Key returns the demand key of the aggregate
func (a *DemandAggregate) Key() DemandKey {
	return DemandKey{Date: a.Date, Time: a.Time}
}

// ReachedThreshold returns true if the count reached the advisory threshold
func (a *DemandAggregate) ReachedThreshold(threshold int) bool {
	return threshold > 0 && a.Count >= threshold
}
