package entity

import (
	"time"

	"github.com/google/uuid"
)

// Mode and Status persist as their textual name, not a numeric ordinal.
// The schema migrated from integer to text columns once; text is the contract.
type Mode string

type Status string

const (
	ModeInPerson Mode = "InPerson"
	ModeRemote   Mode = "Remote"
)

const (
	StatusScheduled Status = "Scheduled"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
	StatusNoShow    Status = "NoShow"
)

// Modes and Statuses enumerate the accepted textual values.
var (
	Modes    = []Mode{ModeInPerson, ModeRemote}
	Statuses = []Status{StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow}
)

type Appointment struct {
	Base
	PatientID    uuid.UUID `gorm:"type:uuid;not null"` // References: patients(id)
	StartsAt     time.Time `gorm:"not null"`
	EndsAt       time.Time `gorm:"not null"`
	Mode         Mode      `gorm:"type:text;not null"`
	Status       Status    `gorm:"type:text;not null"`
	LocationLink *string
	Notes        *string

	// Relations
	Patient *Patient `gorm:"foreignKey:PatientID;references:ID;constraint:OnDelete:CASCADE"`
}

func (m Mode) Valid() bool {
	for _, known := range Modes {
		if m == known {
			return true
		}
	}
	return false
}

func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}
