package availability

import (
	"fmt"

	"github.com/Team-lead001/silver-walks-backend/cmd/models"
	"github.com/Team-lead001/silver-walks-backend/cmd/utils"
)

// SlotInput is the wire shape for a recurring weekly slot.
type SlotInput struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ValidateRecurringSlots checks a replacement slot set before it is written.
// Day of week must be 0-6 (Sunday=0), times must be strict 24-hour HH:MM, and
// each slot must start before it ends.
func ValidateRecurringSlots(slots []SlotInput) error {
	if len(slots) == 0 {
		return models.ValidationError{Field: "slots", Message: "at least one slot is required"}
	}
	for i, slot := range slots {
		field := fmt.Sprintf("slots[%d]", i)
		if slot.DayOfWeek < 0 || slot.DayOfWeek > 6 {
			return models.ValidationError{Field: field + ".day_of_week", Message: "must be between 0 (Sunday) and 6"}
		}
		start, err := utils.ClockMinutes(slot.StartTime)
		if err != nil {
			return models.ValidationError{Field: field + ".start_time", Message: err.Error()}
		}
		end, err := utils.ClockMinutes(slot.EndTime)
		if err != nil {
			return models.ValidationError{Field: field + ".end_time", Message: err.Error()}
		}
		if start >= end {
			return models.ValidationError{Field: field, Message: "start_time must be before end_time"}
		}
	}
	return nil
}

// ValidateInterval checks a single HH:MM interval, used for specific-date
// slots which are validated one at a time.
func ValidateInterval(startTime, endTime string) error {
	start, err := utils.ClockMinutes(startTime)
	if err != nil {
		return models.ValidationError{Field: "start_time", Message: err.Error()}
	}
	end, err := utils.ClockMinutes(endTime)
	if err != nil {
		return models.ValidationError{Field: "end_time", Message: err.Error()}
	}
	if start >= end {
		return models.ValidationError{Field: "start_time", Message: "start_time must be before end_time"}
	}
	return nil
}
