package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Device stores an Expo push token registered for a user.
type Device struct {
	gorm.Model
	Token      string    `gorm:"not null;uniqueIndex:idx_token_user" json:"token"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_token_user" json:"user_id"`
	DeviceType string    `gorm:"type:varchar(50)" json:"device_type"`
	DeviceName string    `gorm:"type:varchar(100)" json:"device_name,omitempty"`
}

// NotificationHistory records each dispatch attempt per lifecycle event so
// failed sends remain auditable even though they never fail the transition.
type NotificationHistory struct {
	gorm.Model
	UserID   uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Template string    `gorm:"type:varchar(50)" json:"template"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Data     string    `gorm:"type:text" json:"data,omitempty"`
	Status   string    `gorm:"type:varchar(20)" json:"status"` // sent, failed
	SentAt   time.Time `json:"sent_at"`
}
