package availability

import (
	"testing"
	"time"

	"github.com/Team-lead001/silver-walks-backend/cmd/models"
	"github.com/google/uuid"
)

// tuesday is 2025-01-07.
var tuesday = time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC)

func nurseWithSlots(status models.AvailabilityStatus, slots ...models.AvailabilitySlot) models.NurseProfile {
	return models.NurseProfile{
		ID:                 uuid.New(),
		Name:               "Test Nurse",
		AvailabilityStatus: status,
		Availability:       slots,
	}
}

func recurringSlot(day int, start, end string) models.AvailabilitySlot {
	return models.AvailabilitySlot{
		ID:          uuid.New(),
		IsRecurring: true,
		DayOfWeek:   day,
		StartTime:   start,
		EndTime:     end,
	}
}

func dateSlot(date time.Time, start, end string) models.AvailabilitySlot {
	return models.AvailabilitySlot{
		ID:           uuid.New(),
		IsRecurring:  false,
		SpecificDate: &date,
		StartTime:    start,
		EndTime:      end,
	}
}

func TestIsNurseAvailable_RecurringSlot(t *testing.T) {
	nurse := nurseWithSlots(models.NurseAvailable, recurringSlot(2, "09:00", "12:00"))

	cases := []struct {
		clock string
		want  bool
	}{
		{"10:30", true},
		{"09:00", true}, // start boundary inclusive
		{"12:00", true}, // end boundary inclusive
		{"08:59", false},
		{"12:01", false},
		{"13:00", false},
	}
	for _, c := range cases {
		if got := IsNurseAvailable(&nurse, tuesday, c.clock, nil); got != c.want {
			t.Errorf("IsNurseAvailable(tuesday, %q) = %v, want %v", c.clock, got, c.want)
		}
	}

	wednesday := tuesday.AddDate(0, 0, 1)
	if IsNurseAvailable(&nurse, wednesday, "10:30", nil) {
		t.Error("expected no match on a different weekday")
	}
}

func TestIsNurseAvailable_SpecificDateSlot(t *testing.T) {
	nurse := nurseWithSlots(models.NurseAvailable, dateSlot(tuesday, "14:00", "16:00"))

	if !IsNurseAvailable(&nurse, tuesday, "15:00", nil) {
		t.Error("expected match on the specific date")
	}
	if IsNurseAvailable(&nurse, tuesday.AddDate(0, 0, 7), "15:00", nil) {
		t.Error("specific-date slot must not match other dates")
	}
}

func TestIsNurseAvailable_StatusGate(t *testing.T) {
	slot := recurringSlot(2, "09:00", "12:00")

	for _, status := range []models.AvailabilityStatus{models.NurseSuspended, models.NurseOffline} {
		nurse := nurseWithSlots(status, slot)
		if IsNurseAvailable(&nurse, tuesday, "10:30", nil) {
			t.Errorf("status %s must never be bookable", status)
		}
	}

	// Unknown statuses fail closed.
	nurse := nurseWithSlots(models.AvailabilityStatus("vacationing"), slot)
	if IsNurseAvailable(&nurse, tuesday, "10:30", nil) {
		t.Error("unknown status must not be bookable")
	}
}

func TestIsNurseAvailable_Reserved(t *testing.T) {
	nurse := nurseWithSlots(models.NurseReserved, recurringSlot(2, "09:00", "12:00"))

	if IsNurseAvailable(&nurse, tuesday, "10:30", nil) {
		t.Error("reserved nurse must not be bookable without an elderly profile")
	}

	assigned := models.ElderlyProfile{ID: uuid.New(), AssignedNurseID: &nurse.ID}
	if !IsNurseAvailable(&nurse, tuesday, "10:30", &assigned) {
		t.Error("reserved nurse must be bookable by the assigned elderly")
	}

	otherNurse := uuid.New()
	other := models.ElderlyProfile{ID: uuid.New(), AssignedNurseID: &otherNurse}
	if IsNurseAvailable(&nurse, tuesday, "10:30", &other) {
		t.Error("reserved nurse must not be bookable by a differently assigned elderly")
	}

	unassigned := models.ElderlyProfile{ID: uuid.New()}
	if IsNurseAvailable(&nurse, tuesday, "10:30", &unassigned) {
		t.Error("reserved nurse must not be bookable by an unassigned elderly")
	}
}

func TestIsNurseAvailable_InvalidClock(t *testing.T) {
	nurse := nurseWithSlots(models.NurseAvailable, recurringSlot(2, "09:00", "12:00"))
	if IsNurseAvailable(&nurse, tuesday, "9am", nil) {
		t.Error("malformed clock must not match")
	}
}

func TestFilterAvailableNurses_PreservesOrder(t *testing.T) {
	matchA := nurseWithSlots(models.NurseAvailable, recurringSlot(2, "09:00", "12:00"))
	miss := nurseWithSlots(models.NurseAvailable, recurringSlot(3, "09:00", "12:00"))
	matchB := nurseWithSlots(models.NurseAvailable, recurringSlot(2, "08:00", "11:00"))

	nurses := []models.NurseProfile{matchA, miss, matchB}
	got := FilterAvailableNurses(nurses, tuesday, "10:30", nil)

	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].ID != matchA.ID || got[1].ID != matchB.ID {
		t.Fatal("input order not preserved")
	}

	// Filtering an already-filtered list changes nothing.
	again := FilterAvailableNurses(got, tuesday, "10:30", nil)
	if len(again) != len(got) {
		t.Fatalf("filter not idempotent: %d != %d", len(again), len(got))
	}
}
