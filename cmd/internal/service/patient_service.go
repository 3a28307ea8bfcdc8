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

type DefaultPatientService struct {
	NewUnitOfWork domain.UnitOfWorkFactory
	Validator     *validation.PatientValidator
}

func NewPatientService(factory domain.UnitOfWorkFactory, v *validation.PatientValidator) *DefaultPatientService {
	return &DefaultPatientService{NewUnitOfWork: factory, Validator: v}
}

func (s *DefaultPatientService) GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, apierror.ErrorResponse) {
	uow := s.NewUnitOfWork()
	defer uow.Close()

	patient, err := uow.Patients().FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch patient %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if patient == nil {
		return nil, apierror.NewNotFound("Patient")
	}
	return toPatientResponse(patient), nil
}

func (s *DefaultPatientService) GetPatients(ctx context.Context) ([]*dto.PatientResponse, apierror.ErrorResponse) {
	uow := s.NewUnitOfWork()
	defer uow.Close()

	patients, err := uow.Patients().FindAll(ctx)
	if err != nil {
		log.Errorf("failed to fetch all patients: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*dto.PatientResponse, len(patients))
	for i, p := range patients {
		resp[i] = toPatientResponse(p)
	}
	return resp, nil
}

func (s *DefaultPatientService) CreatePatient(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, apierror.ErrorResponse) {
	uow := s.NewUnitOfWork()
	defer uow.Close()

	utils.Sanitize(req)
	if apierr := s.Validator.Validate(ctx, req); apierr != nil {
		return nil, apierr
	}

	now := utils.NowUTC()
	patient := &entity.Patient{Base: entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}}
	applyPatientRequest(patient, req)

	uow.Patients().Create(patient)
	if _, err := uow.Save(ctx); err != nil {
		log.Errorf("failed to save patient: %v", err)
		return nil, apierror.InternalServerError
	}
	return toPatientResponse(patient), nil
}

func (s *DefaultPatientService) UpdatePatient(ctx context.Context, id uuid.UUID, req *dto.PatientRequest) (*dto.PatientResponse, apierror.ErrorResponse) {
	uow := s.NewUnitOfWork()
	defer uow.Close()

	utils.Sanitize(req)
	if apierr := s.Validator.Validate(ctx, req); apierr != nil {
		return nil, apierr
	}

	patient, err := uow.Patients().FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch patient %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if patient == nil {
		return nil, apierror.NewNotFound("Patient")
	}

	applyPatientRequest(patient, req)
	patient.UpdatedAt = utils.NowUTC()

	uow.Patients().Update(patient)
	if _, err := uow.Save(ctx); err != nil {
		log.Errorf("failed to update patient %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toPatientResponse(patient), nil
}

func (s *DefaultPatientService) DeletePatient(ctx context.Context, id uuid.UUID) apierror.ErrorResponse {
	uow := s.NewUnitOfWork()
	defer uow.Close()

	patient, err := uow.Patients().FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch patient %s: %v", id, err)
		return apierror.InternalServerError
	}
	if patient == nil {
		return apierror.NewNotFound("Patient")
	}

	uow.Patients().Delete(patient)
	if _, err := uow.Save(ctx); err != nil {
		log.Errorf("failed to delete patient %s: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}
