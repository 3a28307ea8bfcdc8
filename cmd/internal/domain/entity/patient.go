package entity

import (
	"time"

	"gorm.io/datatypes"
)

type Patient struct {
	Base
	Name             string `gorm:"not null"`
	LastName         *string
	BirthDate        time.Time `gorm:"not null"`
	Email            *string
	Phone            *string
	EmergencyContact *string
	Tags             datatypes.JSON
}
