package entity

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Questionnaire and QuestionnaireResponse are storage schema only: no service
// exposes them yet, the tables exist so responses recorded by future flows
// have somewhere to live.
type Questionnaire struct {
	Base
	Name        string `gorm:"not null"`
	Description string `gorm:"not null"`
	Questions   datatypes.JSON
	Active      bool `gorm:"not null"`
}

type QuestionnaireResponse struct {
	Base
	QuestionnaireID uuid.UUID `gorm:"type:uuid;not null"` // References: questionnaires(id)
	PatientID       uuid.UUID `gorm:"type:uuid;not null"` // References: patients(id)
	SessionID       uuid.UUID `gorm:"type:uuid;not null"` // References: sessions(id)
	Answers         datatypes.JSON
	Score           *string

	// Relations
	Questionnaire *Questionnaire `gorm:"foreignKey:QuestionnaireID;references:ID;constraint:OnDelete:CASCADE"`
	Patient       *Patient       `gorm:"foreignKey:PatientID;references:ID;constraint:OnDelete:CASCADE"`
	Session       *Session       `gorm:"foreignKey:SessionID;references:ID;constraint:OnDelete:CASCADE"`
}
