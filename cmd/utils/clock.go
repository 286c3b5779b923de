package utils

import (
	"errors"
	"fmt"
	"time"
)

// ClockMinutes parses a 24-hour HH:MM string into minutes since midnight.
// The format is strict: two digits, a colon, two digits. No spaces, no
// signs, no single-digit hours.
func ClockMinutes(clock string) (int, error) {
	if len(clock) != 5 || clock[2] != ':' {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", clock)
	}
	for _, i := range [...]int{0, 1, 3, 4} {
		if clock[i] < '0' || clock[i] > '9' {
			return 0, fmt.Errorf("invalid time %q, expected HH:MM", clock)
		}
	}
	h := int(clock[0]-'0')*10 + int(clock[1]-'0')
	m := int(clock[3]-'0')*10 + int(clock[4]-'0')
	if h > 23 || m > 59 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", clock)
	}
	return h*60 + m, nil
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, errors.New("invalid date format, use YYYY-MM-DD")
	}
	return t, nil
}

// SameDate reports whether two timestamps fall on the same calendar day.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
