package domain

import (
	"strings"
	"unicode/utf8"
)

// Default configuration values
const (
	DefaultDemandThreshold = 6
	DefaultCurrency        = "ZAR"
)

// Business validation constants
const (
	MinPinLength = 4
	MaxPinLength = 32
)

// Time format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	ClockFormat = "15:04"      // HH:MM, как отдают календари
	LabelFormat = "3:04 PM"    // "6:00 AM", как хранятся слоты
	DateLength  = len(DateFormat)
)

// Ограничения заявки на рейс по спросу
const (
	MaxPassengers = 1000
)

// TrimDate убирает пробелы и обрезает строку до префикса даты (первые 10 символов).
// Режет по символам, а не по байтам. Некорректные даты не отклоняются и хранятся как есть.
func TrimDate(s string) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= DateLength {
		return s
	}
	return string([]rune(s)[:DateLength])
}
