package ics

// Event событие фида: дата YYYY-MM-DD и время начала HH:MM
type Event struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	Summary string `json:"summary,omitempty"`
}
