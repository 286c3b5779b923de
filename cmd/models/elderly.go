package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ElderlyProfile struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string    `gorm:"column:name;size:255;not null" json:"name"`
	DateOfBirth time.Time `gorm:"column:date_of_birth" json:"date_of_birth"`
	Gender      string    `gorm:"column:gender;size:20" json:"gender"`
	Phone       string    `gorm:"column:phone;size:20" json:"phone"`
	Address     string    `gorm:"column:address;type:text" json:"address"`

	// AssignedNurseID backs the RESERVED status check: a nurse in the
	// reserved state is bookable only by the elderly holding this reference.
	AssignedNurseID *uuid.UUID    `gorm:"type:uuid;index" json:"assigned_nurse_id,omitempty"`
	AssignedNurse   *NurseProfile `gorm:"foreignKey:AssignedNurseID" json:"assigned_nurse,omitempty"`

	User      *User     `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ElderlyProfile) TableName() string {
	return "elderly_profiles"
}

func (e *ElderlyProfile) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
