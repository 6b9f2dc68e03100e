package datemath

import (
	"fmt"
	"strings"
	"time"
)

// weekdays maps recognized weekday names to time.Weekday. Spanish names are
// accepted with and without accents; English names are accepted as well since
// inbound phrases mix both languages.
var weekdays = map[string]time.Weekday{
	"lunes":     time.Monday,
	"martes":    time.Tuesday,
	"miércoles": time.Wednesday,
	"miercoles": time.Wednesday,
	"jueves":    time.Thursday,
	"viernes":   time.Friday,
	"sábado":    time.Saturday,
	"sabado":    time.Saturday,
	"domingo":   time.Sunday,

	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// ErrUnknownWeekday is returned when a name is not one of the recognized
// weekday spellings.
var ErrUnknownWeekday = fmt.Errorf("unknown weekday name")

// NextWeekday returns the date of the next occurrence of the named weekday
// strictly after today. When today already is that weekday, the result is
// today plus seven days, never today itself.
func NextWeekday(name string, today time.Time) (time.Time, error) {
	target, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownWeekday, name)
	}

	daysUntil := int(target - today.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return StartOfDay(today.AddDate(0, 0, daysUntil)), nil
}

// Resolve maps a relative Spanish date expression to an absolute date anchored
// on today. The second return value reports whether the expression was
// recognized. Resolution never reads the system clock: today is always an
// explicit input.
func Resolve(relative string, today time.Time) (time.Time, bool) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "hoy", "today":
		return StartOfDay(today), true
	case "mañana", "manana", "tomorrow":
		return StartOfDay(today.AddDate(0, 0, 1)), true
	case "pasado mañana", "pasado manana":
		return StartOfDay(today.AddDate(0, 0, 2)), true
	}

	for _, prefix := range []string{"próximo ", "proximo ", "próxima ", "proxima ", "este ", "el ", "next "} {
		if strings.HasPrefix(relative, prefix) {
			if d, err := NextWeekday(strings.TrimPrefix(relative, prefix), today); err == nil {
				return d, true
			}
			return time.Time{}, false
		}
	}

	if d, err := NextWeekday(relative, today); err == nil {
		return d, true
	}

	return time.Time{}, false
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
