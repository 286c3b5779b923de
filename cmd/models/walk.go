package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WalkStatus string

const (
	WalkScheduled  WalkStatus = "scheduled"
	WalkConfirmed  WalkStatus = "confirmed"
	WalkInProgress WalkStatus = "in_progress"
	WalkCompleted  WalkStatus = "completed"
	WalkCancelled  WalkStatus = "cancelled"
	WalkRejected   WalkStatus = "rejected"
)

// WalkFeedback is the structured feedback payload either side can leave on a
// completed walk. Rating is optional; sessions without one are excluded from
// rating averages entirely.
type WalkFeedback struct {
	Rating *float64 `json:"rating,omitempty"`
	Note   string   `json:"note,omitempty"`
}

// WalkSession links one elderly and one nurse for a scheduled walk and
// carries the full lifecycle state plus recorded telemetry. Sessions are
// never deleted; terminal rows remain as history for statistics.
type WalkSession struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ElderlyID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"elderly_id"`
	NurseID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"nurse_id"`
	ScheduledDate   time.Time  `gorm:"column:scheduled_date;not null;index" json:"scheduled_date"`
	ScheduledTime   string     `gorm:"column:scheduled_time;size:5;not null" json:"scheduled_time"`
	DurationMinutes int        `gorm:"column:duration_minutes;not null" json:"duration_minutes"`
	Status          WalkStatus `gorm:"column:status;size:20;not null;default:scheduled;index" json:"status"`

	RouteData       datatypes.JSON `gorm:"column:route_data" json:"route_data,omitempty"`
	ActualStartTime *time.Time     `gorm:"column:actual_start_time" json:"actual_start_time,omitempty"`
	ActualEndTime   *time.Time     `gorm:"column:actual_end_time" json:"actual_end_time,omitempty"`
	DistanceMeters  *int           `gorm:"column:distance_meters" json:"distance_meters,omitempty"`
	StepsCount      *int           `gorm:"column:steps_count" json:"steps_count,omitempty"`
	CaloriesBurned  *int           `gorm:"column:calories_burned" json:"calories_burned,omitempty"`
	PointsEarned    *int           `gorm:"column:points_earned" json:"points_earned,omitempty"`

	ElderlyFeedback    *WalkFeedback `gorm:"column:elderly_feedback;serializer:json" json:"elderly_feedback,omitempty"`
	NurseFeedback      *WalkFeedback `gorm:"column:nurse_feedback;serializer:json" json:"nurse_feedback,omitempty"`
	CancellationReason string        `gorm:"column:cancellation_reason;type:text" json:"cancellation_reason,omitempty"`

	Elderly *ElderlyProfile `gorm:"foreignKey:ElderlyID" json:"elderly,omitempty"`
	Nurse   *NurseProfile   `gorm:"foreignKey:NurseID" json:"nurse,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (WalkSession) TableName() string {
	return "walk_sessions"
}

func (w *WalkSession) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// Terminal reports whether no further transitions can leave the status.
func (s WalkStatus) Terminal() bool {
	switch s {
	case WalkCompleted, WalkCancelled, WalkRejected:
		return true
	}
	return false
}
