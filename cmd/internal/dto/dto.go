// Package dto holds the request and response shapes of the HTTP surface.
// Date and time fields travel as strings (RFC 3339 timestamps, plain dates
// for birth dates) and are parsed by the service mapping functions.
package dto

import (
	"encoding/json"

	"github.com/google/uuid"
)

type PatientRequest struct {
	Name             string          `json:"name" validate:"required,max=100"`
	LastName         *string         `json:"lastName" validate:"omitempty,max=150"`
	BirthDate        string          `json:"birthDate" validate:"required,dateonly"`
	Email            *string         `json:"email" validate:"omitempty,email"`
	Phone            *string         `json:"phone" validate:"omitempty,max=30"`
	EmergencyContact *string         `json:"emergencyContact" validate:"omitempty,max=150"`
	Tags             json.RawMessage `json:"tags" validate:"omitempty,max=1000"`
}

type PatientResponse struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	LastName         *string         `json:"lastName"`
	BirthDate        string          `json:"birthDate"`
	Email            *string         `json:"email"`
	Phone            *string         `json:"phone"`
	EmergencyContact *string         `json:"emergencyContact"`
	Tags             json.RawMessage `json:"tags,omitempty"`
	CreatedAt        string          `json:"createdAt"`
	UpdatedAt        string          `json:"updatedAt"`
}

type AppointmentRequest struct {
	PatientID    uuid.UUID `json:"patientId" validate:"required"`
	StartsAt     string    `json:"start" validate:"required,iso8601"`
	EndsAt       string    `json:"end" validate:"required,iso8601"`
	Mode         string    `json:"mode" validate:"required"`
	Status       string    `json:"status" validate:"required"`
	LocationLink *string   `json:"locationLink" validate:"omitempty,max=500"`
	Notes        *string   `json:"notes" validate:"omitempty,max=2000"`
}

type AppointmentResponse struct {
	ID           uuid.UUID        `json:"id"`
	PatientID    uuid.UUID        `json:"patientId"`
	StartsAt     string           `json:"start"`
	EndsAt       string           `json:"end"`
	Mode         string           `json:"mode"`
	Status       string           `json:"status"`
	LocationLink *string          `json:"locationLink"`
	Notes        *string          `json:"notes"`
	Patient      *PatientResponse `json:"patient,omitempty"`
	CreatedAt    string           `json:"createdAt"`
	UpdatedAt    string           `json:"updatedAt"`
}

type SessionRequest struct {
	PatientID     uuid.UUID       `json:"patientId" validate:"required"`
	AppointmentID *uuid.UUID      `json:"appointmentId"`
	Subjective    *string         `json:"subjective" validate:"omitempty,max=2000"`
	Observations  *string         `json:"observations" validate:"omitempty,max=4000"`
	Analysis      *string         `json:"analysis" validate:"omitempty,max=4000"`
	ActionPlan    *string         `json:"actionPlan" validate:"omitempty,max=4000"`
	Files         json.RawMessage `json:"files" validate:"omitempty,max=2000"`
}

type SessionResponse struct {
	ID            uuid.UUID             `json:"id"`
	PatientID     uuid.UUID             `json:"patientId"`
	AppointmentID *uuid.UUID            `json:"appointmentId"`
	Subjective    *string               `json:"subjective"`
	Observations  *string               `json:"observations"`
	Analysis      *string               `json:"analysis"`
	ActionPlan    *string               `json:"actionPlan"`
	Files         json.RawMessage       `json:"files,omitempty"`
	Patient       *PatientResponse      `json:"patient,omitempty"`
	Appointment   *AppointmentResponse  `json:"appointment,omitempty"`
	Notes         []SessionNoteResponse `json:"notes"`
	CreatedAt     string                `json:"createdAt"`
	UpdatedAt     string                `json:"updatedAt"`
}

type SessionNoteRequest struct {
	Content string `json:"content" validate:"required,max=5000"`
}

type SessionNoteResponse struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"sessionId"`
	Content   string    `json:"content"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

type DashboardResponse struct {
	TotalPatients          int                    `json:"totalPatients"`
	TotalSessions          int                    `json:"totalSessions"`
	TotalAppointmentsToday int                    `json:"totalAppointmentsToday"`
	UpcomingAppointments   []*AppointmentResponse `json:"upcomingAppointments"`
}

type HealthResponse struct {
	Service string `json:"service"`
	Status  string `json:"status"`
	UTC     string `json:"utc"`
}
