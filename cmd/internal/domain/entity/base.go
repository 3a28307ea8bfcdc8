package entity

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the identity and lifecycle timestamps shared by every entity.
// DeletedAt exists for schema fidelity only: nothing sets or filters on it,
// deletes are hard deletes.
type Base struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
	DeletedAt *time.Time
}
