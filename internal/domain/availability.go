package domain

import (
	"strings"
	"time"
)

// BlockedSlot represents one route+time on one date marked unavailable
type BlockedSlot struct {
	Date  string
	Route RouteID
	Time  string
}

// Key returns the set key of the slot: "date|route|time"
func (s BlockedSlot) Key() string {
	return s.Date + "|" + string(s.Route) + "|" + s.Time
}

// ClockToLabel converts "HH:MM" into the slot label form ("6:00 AM").
// Значения, которые не удалось разобрать, возвращаются без изменений.
func ClockToLabel(hhmm string) string {
	t, err := time.Parse(ClockFormat, strings.TrimSpace(hhmm))
	if err != nil {
		return hhmm
	}
	return t.Format(LabelFormat)
}

// LabelToClock converts a slot label ("6:00 AM") into "HH:MM".
// Значения, которые не удалось разобрать, возвращаются без изменений.
func LabelToClock(label string) string {
	t, err := time.Parse(LabelFormat, strings.TrimSpace(label))
	if err != nil {
		return label
	}
	return t.Format(ClockFormat)
}
