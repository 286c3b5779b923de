package utils

import (
	"testing"
	"time"
)

func TestClockMinutes(t *testing.T) {
	cases := []struct {
		clock   string
		minutes int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"12:30", 750, false},
		{"23:59", 1439, false},
		{"9:00", 0, true},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"1230", 0, true},
		{"12-30", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
		{" 9:30", 0, true},
		{"09: 5", 0, true},
		{"+9:30", 0, true},
		{"09:3 ", 0, true},
	}

	for _, c := range cases {
		got, err := ClockMinutes(c.clock)
		if c.wantErr {
			if err == nil {
				t.Errorf("ClockMinutes(%q): expected error, got %d", c.clock, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ClockMinutes(%q): unexpected error %v", c.clock, err)
			continue
		}
		if got != c.minutes {
			t.Errorf("ClockMinutes(%q) = %d, want %d", c.clock, got, c.minutes)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-07")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year() != 2025 || d.Month() != time.January || d.Day() != 7 {
		t.Fatalf("unexpected date: %v", d)
	}

	if _, err := ParseDate("07-01-2025"); err == nil {
		t.Fatal("expected error for wrong format")
	}
	if _, err := ParseDate(""); err == nil {
		t.Fatal("expected error for empty date")
	}
}

func TestSameDate(t *testing.T) {
	a := time.Date(2025, 1, 7, 9, 0, 0, 0, time.UTC)
	b := time.Date(2025, 1, 7, 23, 59, 0, 0, time.UTC)
	c := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)

	if !SameDate(a, b) {
		t.Fatal("expected same date")
	}
	if SameDate(a, c) {
		t.Fatal("expected different dates")
	}
}
