package entity

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Session is one clinical encounter record. A session always belongs to a
// patient and may optionally be linked to the appointment it happened in.
type Session struct {
	Base
	PatientID     uuid.UUID  `gorm:"type:uuid;not null"` // References: patients(id)
	AppointmentID *uuid.UUID `gorm:"type:uuid"`          // References: appointments(id)
	Subjective    *string
	Observations  *string
	Analysis      *string
	ActionPlan    *string
	Files         datatypes.JSON

	// Relations
	Patient     *Patient      `gorm:"foreignKey:PatientID;references:ID;constraint:OnDelete:CASCADE"`
	Appointment *Appointment  `gorm:"foreignKey:AppointmentID;references:ID;constraint:OnDelete:CASCADE"`
	Notes       []SessionNote `gorm:"foreignKey:SessionID;references:ID;constraint:OnDelete:CASCADE"`
}

type SessionNote struct {
	Base
	SessionID uuid.UUID `gorm:"type:uuid;not null"` // References: sessions(id)
	Content   string    `gorm:"not null"`
}
