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

type DefaultSessionNoteService struct {
	NewUnitOfWork domain.UnitOfWorkFactory
	Validator     *validation.SessionNoteValidator
}

func NewSessionNoteService(factory domain.UnitOfWorkFactory, v *validation.SessionNoteValidator) *DefaultSessionNoteService {
	return &DefaultSessionNoteService{NewUnitOfWork: factory, Validator: v}
}

func (s *DefaultSessionNoteService) GetNotesBySession(ctx context.Context, sessionID uuid.UUID) ([]*dto.SessionNoteResponse, apierror.ErrorResponse) {
	uow := s.NewUnitOfWork()
	defer uow.Close()

	session, err := uow.Sessions().FindByID(ctx, sessionID)
	if err != nil {
		log.Errorf("failed to fetch session %s: %v", sessionID, err)
		return nil, apierror.InternalServerError
	}
	if session == nil {
		return nil, apierror.NewNotFound("Session")
	}

	notes, err := uow.SessionNotes().FindAllBy(ctx, domain.Query{
		Where:   "session_id = ?",
		Args:    []any{sessionID},
		OrderBy: "created_at asc",
	})
	if err != nil {
		log.Errorf("failed to fetch notes for session %s: %v", sessionID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*dto.SessionNoteResponse, len(notes))
	for i, n := range notes {
		resp[i] = toSessionNoteResponse(n)
	}
	return resp, nil
}

func (s *DefaultSessionNoteService) CreateNote(ctx context.Context, sessionID uuid.UUID, req *dto.SessionNoteRequest) (*dto.SessionNoteResponse, apierror.ErrorResponse) {
	uow := s.NewUnitOfWork()
	defer uow.Close()

	utils.Sanitize(req)
	if apierr := s.Validator.Validate(ctx, req); apierr != nil {
		return nil, apierr
	}

	session, err := uow.Sessions().FindByID(ctx, sessionID)
	if err != nil {
		log.Errorf("failed to fetch session %s: %v", sessionID, err)
		return nil, apierror.InternalServerError
	}
	if session == nil {
		return nil, apierror.NewNotFound("Session")
	}

	now := utils.NowUTC()
	note := &entity.SessionNote{
		Base:      entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		SessionID: sessionID,
		Content:   req.Content,
	}

	uow.SessionNotes().Create(note)
	if _, err := uow.Save(ctx); err != nil {
		log.Errorf("failed to save note for session %s: %v", sessionID, err)
		return nil, apierror.InternalServerError
	}
	return toSessionNoteResponse(note), nil
}

func (s *DefaultSessionNoteService) UpdateNote(ctx context.Context, id uuid.UUID, req *dto.SessionNoteRequest) (*dto.SessionNoteResponse, apierror.ErrorResponse) {
	uow := s.NewUnitOfWork()
	defer uow.Close()

	utils.Sanitize(req)
	if apierr := s.Validator.Validate(ctx, req); apierr != nil {
		return nil, apierr
	}

	note, err := uow.SessionNotes().FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch note %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if note == nil {
		return nil, apierror.NewNotFound("Note")
	}

	note.Content = req.Content
	note.UpdatedAt = utils.NowUTC()

	uow.SessionNotes().Update(note)
	if _, err := uow.Save(ctx); err != nil {
		log.Errorf("failed to update note %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toSessionNoteResponse(note), nil
}

func (s *DefaultSessionNoteService) DeleteNote(ctx context.Context, id uuid.UUID) apierror.ErrorResponse {
	uow := s.NewUnitOfWork()
	defer uow.Close()

	note, err := uow.SessionNotes().FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch note %s: %v", id, err)
		return apierror.InternalServerError
	}
	if note == nil {
		return apierror.NewNotFound("Note")
	}

	uow.SessionNotes().Delete(note)
	if _, err := uow.Save(ctx); err != nil {
		log.Errorf("failed to delete note %s: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}
