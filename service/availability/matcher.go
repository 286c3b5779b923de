package availability

import (
	"time"

	"github.com/Team-lead001/silver-walks-backend/cmd/models"
	"github.com/Team-lead001/silver-walks-backend/cmd/utils"
)

// IsNurseAvailable decides whether a nurse can take a walk at the requested
// date and clock time.
//
// The check is a two-stage gate. The reservation status is evaluated first:
// suspended and offline nurses are never bookable, and a reserved nurse is
// bookable only by the elderly whose assignment relation points at them. Any
// status this code does not know about fails closed. Only then is the slot
// set consulted: one matching slot is enough, and interval boundaries are
// inclusive at minute resolution, so a request at exactly the slot end still
// matches.
func IsNurseAvailable(nurse *models.NurseProfile, date time.Time, clock string, elderly *models.ElderlyProfile) bool {
	if !StatusAdmits(nurse, elderly) {
		return false
	}

	minutes, err := utils.ClockMinutes(clock)
	if err != nil {
		return false
	}

	dayOfWeek := int(date.Weekday())
	for _, slot := range nurse.Availability {
		if slot.IsRecurring {
			if slot.DayOfWeek != dayOfWeek {
				continue
			}
		} else {
			if slot.SpecificDate == nil || !utils.SameDate(*slot.SpecificDate, date) {
				continue
			}
		}

		start, err := utils.ClockMinutes(slot.StartTime)
		if err != nil {
			continue
		}
		end, err := utils.ClockMinutes(slot.EndTime)
		if err != nil {
			continue
		}
		if start <= minutes && minutes <= end {
			return true
		}
	}
	return false
}

// StatusAdmits applies only the reservation-status gate, without consulting
// time slots. Unknown statuses are treated as not bookable.
func StatusAdmits(nurse *models.NurseProfile, elderly *models.ElderlyProfile) bool {
	switch nurse.AvailabilityStatus {
	case models.NurseAvailable:
		return true
	case models.NurseReserved:
		return elderly != nil && elderly.AssignedNurseID != nil && *elderly.AssignedNurseID == nurse.ID
	default:
		return false
	}
}

// FilterAvailableNurses keeps the nurses bookable at the requested date and
// time, preserving the relative order of the input. Callers are expected to
// have ranked the input already (the nurse list query orders by rating).
func FilterAvailableNurses(nurses []models.NurseProfile, date time.Time, clock string, elderly *models.ElderlyProfile) []models.NurseProfile {
	matched := make([]models.NurseProfile, 0, len(nurses))
	for i := range nurses {
		if IsNurseAvailable(&nurses[i], date, clock, elderly) {
			matched = append(matched, nurses[i])
		}
	}
	return matched
}
