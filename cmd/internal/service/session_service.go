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

// sessionRelations are the related fields a session response embeds.
var sessionRelations = []string{"Notes", "Patient", "Appointment"}

type DefaultSessionService struct {
	NewUnitOfWork domain.UnitOfWorkFactory
	Validator     *validation.SessionValidator
}

func NewSessionService(factory domain.UnitOfWorkFactory, v *validation.SessionValidator) *DefaultSessionService {
	return &DefaultSessionService{NewUnitOfWork: factory, Validator: v}
}

func (s *DefaultSessionService) GetSession(ctx context.Context, id uuid.UUID) (*dto.SessionResponse, apierror.ErrorResponse) {
	uow := s.NewUnitOfWork()
	defer uow.Close()

	session, err := uow.Sessions().FindOne(ctx, domain.Query{
		Where:   "id = ?",
		Args:    []any{id},
		Preload: sessionRelations,
	})
	if err != nil {
		log.Errorf("failed to fetch session %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if session == nil {
		return nil, apierror.NewNotFound("Session")
	}
	return toSessionResponse(session), nil
}

func (s *DefaultSessionService) GetSessions(ctx context.Context) ([]*dto.SessionResponse, apierror.ErrorResponse) {
	uow := s.NewUnitOfWork()
	defer uow.Close()

	sessions, err := uow.Sessions().FindAllBy(ctx, domain.Query{Preload: sessionRelations})
	if err != nil {
		log.Errorf("failed to fetch all sessions: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*dto.SessionResponse, len(sessions))
	for i, sess := range sessions {
		resp[i] = toSessionResponse(sess)
	}
	return resp, nil
}

func (s *DefaultSessionService) CreateSession(ctx context.Context, req *dto.SessionRequest) (*dto.SessionResponse, apierror.ErrorResponse) {
	uow := s.NewUnitOfWork()
	defer uow.Close()

	utils.Sanitize(req)
	if apierr := s.Validator.Validate(ctx, uow, req); apierr != nil {
		return nil, apierr
	}

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
	session := &entity.Session{Base: entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}}
	applySessionRequest(session, req)

	uow.Sessions().Create(session)
	if _, err := uow.Save(ctx); err != nil {
		log.Errorf("failed to save session: %v", err)
		return nil, apierror.InternalServerError
	}

	session.Patient = patient
	return toSessionResponse(session), nil
}

func (s *DefaultSessionService) UpdateSession(ctx context.Context, id uuid.UUID, req *dto.SessionRequest) (*dto.SessionResponse, apierror.ErrorResponse) {
	uow := s.NewUnitOfWork()
	defer uow.Close()

	utils.Sanitize(req)
	if apierr := s.Validator.Validate(ctx, uow, req); apierr != nil {
		return nil, apierr
	}

	session, err := uow.Sessions().FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch session %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if session == nil {
		return nil, apierror.NewNotFound("Session")
	}

	applySessionRequest(session, req)
	session.UpdatedAt = utils.NowUTC()

	uow.Sessions().Update(session)
	if _, err := uow.Save(ctx); err != nil {
		log.Errorf("failed to update session %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toSessionResponse(session), nil
}

func (s *DefaultSessionService) DeleteSession(ctx context.Context, id uuid.UUID) apierror.ErrorResponse {
	uow := s.NewUnitOfWork()
	defer uow.Close()

	session, err := uow.Sessions().FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch session %s: %v", id, err)
		return apierror.InternalServerError
	}
	if session == nil {
		return apierror.NewNotFound("Session")
	}

	// Notes go with the session through the FK cascade.
	uow.Sessions().Delete(session)
	if _, err := uow.Save(ctx); err != nil {
		log.Errorf("failed to delete session %s: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}
