package routes

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"psicoagenda/cmd/internal/dto"
	"psicoagenda/cmd/internal/utils/apierror"
)

type SessionNoteService interface {
	GetNotesBySession(ctx context.Context, sessionID uuid.UUID) ([]*dto.SessionNoteResponse, apierror.ErrorResponse)
	CreateNote(ctx context.Context, sessionID uuid.UUID, req *dto.SessionNoteRequest) (*dto.SessionNoteResponse, apierror.ErrorResponse)
	UpdateNote(ctx context.Context, id uuid.UUID, req *dto.SessionNoteRequest) (*dto.SessionNoteResponse, apierror.ErrorResponse)
	DeleteNote(ctx context.Context, id uuid.UUID) apierror.ErrorResponse
}

type DefaultSessionNoteRoute struct {
	SessionNoteService SessionNoteService
}

func NewSessionNoteDefault(noteService SessionNoteService) *DefaultSessionNoteRoute {
	return &DefaultSessionNoteRoute{SessionNoteService: noteService}
}

func (n *DefaultSessionNoteRoute) GetNotes(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierr := apierror.NewInvalidParamTypeError("id", "uuid")
		return c.JSON(apierr.Code(), apierr)
	}

	notes, apierr := n.SessionNoteService.GetNotesBySession(c.Request().Context(), sessionID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, notes)
}

func (n *DefaultSessionNoteRoute) CreateNote(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierr := apierror.NewInvalidParamTypeError("id", "uuid")
		return c.JSON(apierr.Code(), apierr)
	}

	var req dto.SessionNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	note, apierr := n.SessionNoteService.CreateNote(c.Request().Context(), sessionID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, note)
}

func (n *DefaultSessionNoteRoute) UpdateNote(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierr := apierror.NewInvalidParamTypeError("id", "uuid")
		return c.JSON(apierr.Code(), apierr)
	}

	var req dto.SessionNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	note, apierr := n.SessionNoteService.UpdateNote(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, note)
}

func (n *DefaultSessionNoteRoute) DeleteNote(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierr := apierror.NewInvalidParamTypeError("id", "uuid")
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := n.SessionNoteService.DeleteNote(c.Request().Context(), id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Note deleted"})
}
