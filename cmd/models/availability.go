package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilitySlot is either a recurring weekly slot (IsRecurring true,
// DayOfWeek 0-6 with Sunday=0) or a one-off slot for a specific calendar
// date. Start and end are HH:MM clock strings at minute granularity.
type AvailabilitySlot struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	NurseID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"nurse_id"`
	IsRecurring  bool       `gorm:"column:is_recurring;not null;default:true" json:"is_recurring"`
	DayOfWeek    int        `gorm:"column:day_of_week" json:"day_of_week"`
	SpecificDate *time.Time `gorm:"column:specific_date" json:"specific_date,omitempty"`
	StartTime    string     `gorm:"column:start_time;size:5;not null" json:"start_time"`
	EndTime      string     `gorm:"column:end_time;size:5;not null" json:"end_time"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (AvailabilitySlot) TableName() string {
	return "nurse_availabilities"
}

func (s *AvailabilitySlot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
