package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"

	"psicoagenda/cmd/internal/domain"
	"psicoagenda/cmd/internal/domain/entity"
	"psicoagenda/cmd/internal/dto"
	"psicoagenda/cmd/internal/utils"
	"psicoagenda/cmd/internal/utils/apierror"
	"psicoagenda/cmd/internal/validation"
)

type DefaultAppointmentService struct {
	NewUnitOfWork domain.UnitOfWorkFactory
	Validator     *validation.AppointmentValidator
}

func NewAppointmentService(factory domain.UnitOfWorkFactory, v *validation.AppointmentValidator) *DefaultAppointmentService {
	return &DefaultAppointmentService{NewUnitOfWork: factory, Validator: v}
}

func (s *DefaultAppointmentService) GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, apierror.ErrorResponse) {
	uow := s.NewUnitOfWork()
	defer uow.Close()

	appt, err := uow.Appointments().FindOne(ctx, domain.Query{
		Where:   "id = ?",
		Args:    []any{id},
		Preload: []string{"Patient"},
	})
	if err != nil {
		log.Errorf("failed to fetch appointment %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if appt == nil {
		return nil, apierror.NewNotFound("Appointment")
	}
	return toAppointmentResponse(appt), nil
}

func (s *DefaultAppointmentService) GetAppointments(ctx context.Context) ([]*dto.AppointmentResponse, apierror.ErrorResponse) {
	uow := s.NewUnitOfWork()
	defer uow.Close()

	appts, err := uow.Appointments().FindAllBy(ctx, domain.Query{Preload: []string{"Patient"}})
	if err != nil {
		log.Errorf("failed to fetch all appointments: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*dto.AppointmentResponse, len(appts))
	for i, appt := range appts {
		resp[i] = toAppointmentResponse(appt)
	}
	return resp, nil
}

func (s *DefaultAppointmentService) CreateAppointment(ctx context.Context, req *dto.AppointmentRequest) (*dto.AppointmentResponse, apierror.ErrorResponse) {
	uow := s.NewUnitOfWork()
	defer uow.Close()

	utils.Sanitize(req)
	if apierr := s.Validator.Validate(ctx, uow, req); apierr != nil {
		return nil, apierr
	}

	// The validator already checked the reference; re-check on the same
	// session right before staging so the write cannot follow a stale read.
	patient, err := uow.Patients().FindByID(ctx, req.PatientID)
	if err != nil {
		log.Errorf("failed to fetch patient %s: %v", req.PatientID, err)
		return nil, apierror.InternalServerError
	}
	if patient == nil {
		return nil, apierror.NewValidation([]apierror.FieldError{
			{Field: "patientId", Message: "patient not found"},
		})
	}

	now := utils.NowUTC()
	appt := &entity.Appointment{Base: entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}}
	applyAppointmentRequest(appt, req)

	uow.Appointments().Create(appt)
	if _, err := uow.Save(ctx); err != nil {
		log.Errorf("failed to save appointment: %v", err)
		return nil, apierror.InternalServerError
	}

	appt.Patient = patient
	return toAppointmentResponse(appt), nil
}

func (s *DefaultAppointmentService) UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.AppointmentRequest) (*dto.AppointmentResponse, apierror.ErrorResponse) {
	uow := s.NewUnitOfWork()
	defer uow.Close()

	utils.Sanitize(req)
	if apierr := s.Validator.Validate(ctx, uow, req); apierr != nil {
		return nil, apierr
	}

	appt, err := uow.Appointments().FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch appointment %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if appt == nil {
		return nil, apierror.NewNotFound("Appointment")
	}

	applyAppointmentRequest(appt, req)
	appt.UpdatedAt = utils.NowUTC()

	uow.Appointments().Update(appt)
	if _, err := uow.Save(ctx); err != nil {
		log.Errorf("failed to update appointment %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toAppointmentResponse(appt), nil
}

func (s *DefaultAppointmentService) DeleteAppointment(ctx context.Context, id uuid.UUID) apierror.ErrorResponse {
	uow := s.NewUnitOfWork()
	defer uow.Close()

	appt, err := uow.Appointments().FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch appointment %s: %v", id, err)
		return apierror.InternalServerError
	}
	if appt == nil {
		return apierror.NewNotFound("Appointment")
	}

	uow.Appointments().Delete(appt)
	if _, err := uow.Save(ctx); err != nil {
		log.Errorf("failed to delete appointment %s: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}
