package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// AvailabilityStatus gates whether a nurse can be considered for bookings at
// all, independent of any time slot.
type AvailabilityStatus string

const (
	NurseAvailable AvailabilityStatus = "available"
	NurseReserved  AvailabilityStatus = "reserved"
	NurseSuspended AvailabilityStatus = "suspended"
	NurseOffline   AvailabilityStatus = "offline"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

type NurseProfile struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	Name               string             `gorm:"column:name;size:255;not null" json:"name"`
	Phone              string             `gorm:"column:phone;size:20" json:"phone"`
	Address            string             `gorm:"column:address;type:text" json:"address"`
	Bio                string             `gorm:"column:bio;type:text" json:"bio,omitempty"`
	Specializations    pq.StringArray     `gorm:"column:specializations;type:text[]" json:"specializations"`
	ExperienceYears    int                `gorm:"column:experience_years;default:0" json:"experience_years"`
	MaxPatientsPerDay  int                `gorm:"column:max_patients_per_day;default:5" json:"max_patients_per_day"`
	Rating             float64            `gorm:"column:rating;type:decimal(3,2);not null;default:0" json:"rating"`
	TotalWalks         int                `gorm:"column:total_walks;not null;default:0" json:"total_walks"`
	PointsEarned       int                `gorm:"column:points_earned;not null;default:0" json:"points_earned"`
	AvailabilityStatus AvailabilityStatus `gorm:"column:availability_status;size:50;not null;default:available" json:"availability_status"`
	VerificationStatus VerificationStatus `gorm:"column:verification_status;size:50;not null;default:pending" json:"verification_status"`

	Availability   []AvailabilitySlot   `gorm:"foreignKey:NurseID;constraint:OnDelete:CASCADE" json:"availability,omitempty"`
	Certifications []NurseCertification `gorm:"foreignKey:NurseID;constraint:OnDelete:CASCADE" json:"certifications,omitempty"`
	User           *User                `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (NurseProfile) TableName() string {
	return "nurse_profiles"
}

func (n *NurseProfile) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

type NurseCertification struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	NurseID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"nurse_id"`
	Name       string     `gorm:"column:name;size:255;not null" json:"name"`
	Issuer     string     `gorm:"column:issuer;size:255;not null" json:"issuer"`
	IssueDate  time.Time  `gorm:"column:issue_date;not null" json:"issue_date"`
	ExpiryDate *time.Time `gorm:"column:expiry_date" json:"expiry_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (NurseCertification) TableName() string {
	return "nurse_certifications"
}

func (c *NurseCertification) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
