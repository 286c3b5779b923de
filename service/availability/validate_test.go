package availability

import (
	"errors"
	"testing"

	"github.com/Team-lead001/silver-walks-backend/cmd/models"
)

func TestValidateRecurringSlots_OK(t *testing.T) {
	slots := []SlotInput{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
		{DayOfWeek: 3, StartTime: "14:00", EndTime: "17:30"},
	}
	if err := ValidateRecurringSlots(slots); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRecurringSlots_Rejections(t *testing.T) {
	cases := []struct {
		name  string
		slots []SlotInput
	}{
		{"empty set", nil},
		{"day too low", []SlotInput{{DayOfWeek: -1, StartTime: "09:00", EndTime: "12:00"}}},
		{"day too high", []SlotInput{{DayOfWeek: 7, StartTime: "09:00", EndTime: "12:00"}}},
		{"bad start time", []SlotInput{{DayOfWeek: 1, StartTime: "9:00", EndTime: "12:00"}}},
		{"bad end time", []SlotInput{{DayOfWeek: 1, StartTime: "09:00", EndTime: "25:00"}}},
		{"start equals end", []SlotInput{{DayOfWeek: 1, StartTime: "09:00", EndTime: "09:00"}}},
		{"start after end", []SlotInput{{DayOfWeek: 1, StartTime: "12:00", EndTime: "09:00"}}},
	}

	for _, c := range cases {
		err := ValidateRecurringSlots(c.slots)
		if err == nil {
			t.Errorf("%s: expected error", c.name)
			continue
		}
		var ve models.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("%s: expected ValidationError, got %T", c.name, err)
		}
	}
}

func TestValidateInterval(t *testing.T) {
	if err := ValidateInterval("08:00", "08:01"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateInterval("08:01", "08:00"); err == nil {
		t.Fatal("expected error for inverted interval")
	}
	if err := ValidateInterval("08:00", "08:00"); err == nil {
		t.Fatal("expected error for empty interval")
	}
}
