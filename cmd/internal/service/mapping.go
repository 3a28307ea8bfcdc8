package service

import (
	"time"

	"psicoagenda/cmd/internal/domain/entity"
	"psicoagenda/cmd/internal/dto"
	"psicoagenda/cmd/internal/utils"
)

// Hand-written DTO/entity conversions, one function per direction. Request
// parsing assumes the validator already checked the date/time formats.

func toPatientResponse(p *entity.Patient) *dto.PatientResponse {
	return &dto.PatientResponse{
		ID:               p.ID,
		Name:             p.Name,
		LastName:         p.LastName,
		BirthDate:        utils.FormatDate(p.BirthDate),
		Email:            p.Email,
		Phone:            p.Phone,
		EmergencyContact: p.EmergencyContact,
		Tags:             []byte(p.Tags),
		CreatedAt:        utils.FormatTime(p.CreatedAt),
		UpdatedAt:        utils.FormatTime(p.UpdatedAt),
	}
}

func applyPatientRequest(p *entity.Patient, req *dto.PatientRequest) {
	birth, _ := time.Parse("2006-01-02", req.BirthDate)
	p.Name = req.Name
	p.LastName = req.LastName
	p.BirthDate = birth
	p.Email = req.Email
	p.Phone = req.Phone
	p.EmergencyContact = req.EmergencyContact
	p.Tags = []byte(req.Tags)
}

func toAppointmentResponse(a *entity.Appointment) *dto.AppointmentResponse {
	resp := &dto.AppointmentResponse{
		ID:           a.ID,
		PatientID:    a.PatientID,
		StartsAt:     utils.FormatTime(a.StartsAt),
		EndsAt:       utils.FormatTime(a.EndsAt),
		Mode:         string(a.Mode),
		Status:       string(a.Status),
		LocationLink: a.LocationLink,
		Notes:        a.Notes,
		CreatedAt:    utils.FormatTime(a.CreatedAt),
		UpdatedAt:    utils.FormatTime(a.UpdatedAt),
	}
	if a.Patient != nil {
		resp.Patient = toPatientResponse(a.Patient)
	}
	return resp
}

func applyAppointmentRequest(a *entity.Appointment, req *dto.AppointmentRequest) {
	start, _ := time.Parse(time.RFC3339, req.StartsAt)
	end, _ := time.Parse(time.RFC3339, req.EndsAt)
	a.PatientID = req.PatientID
	a.StartsAt = start.UTC()
	a.EndsAt = end.UTC()
	a.Mode = entity.Mode(req.Mode)
	a.Status = entity.Status(req.Status)
	a.LocationLink = req.LocationLink
	a.Notes = req.Notes
}

func toSessionResponse(s *entity.Session) *dto.SessionResponse {
	resp := &dto.SessionResponse{
		ID:            s.ID,
		PatientID:     s.PatientID,
		AppointmentID: s.AppointmentID,
		Subjective:    s.Subjective,
		Observations:  s.Observations,
		Analysis:      s.Analysis,
		ActionPlan:    s.ActionPlan,
		Files:         []byte(s.Files),
		Notes:         make([]dto.SessionNoteResponse, len(s.Notes)),
		CreatedAt:     utils.FormatTime(s.CreatedAt),
		UpdatedAt:     utils.FormatTime(s.UpdatedAt),
	}
	if s.Patient != nil {
		resp.Patient = toPatientResponse(s.Patient)
	}
	if s.Appointment != nil {
		resp.Appointment = toAppointmentResponse(s.Appointment)
	}
	for i := range s.Notes {
		resp.Notes[i] = *toSessionNoteResponse(&s.Notes[i])
	}
	return resp
}

func applySessionRequest(s *entity.Session, req *dto.SessionRequest) {
	s.PatientID = req.PatientID
	s.AppointmentID = req.AppointmentID
	s.Subjective = req.Subjective
	s.Observations = req.Observations
	s.Analysis = req.Analysis
	s.ActionPlan = req.ActionPlan
	s.Files = []byte(req.Files)
}

func toSessionNoteResponse(n *entity.SessionNote) *dto.SessionNoteResponse {
	return &dto.SessionNoteResponse{
		ID:        n.ID,
		SessionID: n.SessionID,
		Content:   n.Content,
		CreatedAt: utils.FormatTime(n.CreatedAt),
		UpdatedAt: utils.FormatTime(n.UpdatedAt),
	}
}
