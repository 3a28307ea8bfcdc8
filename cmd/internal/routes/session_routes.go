package routes

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"psicoagenda/cmd/internal/dto"
	"psicoagenda/cmd/internal/utils/apierror"
)

type SessionService interface {
	GetSession(ctx context.Context, id uuid.UUID) (*dto.SessionResponse, apierror.ErrorResponse)
	GetSessions(ctx context.Context) ([]*dto.SessionResponse, apierror.ErrorResponse)
	CreateSession(ctx context.Context, req *dto.SessionRequest) (*dto.SessionResponse, apierror.ErrorResponse)
	UpdateSession(ctx context.Context, id uuid.UUID, req *dto.SessionRequest) (*dto.SessionResponse, apierror.ErrorResponse)
	DeleteSession(ctx context.Context, id uuid.UUID) apierror.ErrorResponse
}

type DefaultSessionRoute struct {
	SessionService SessionService
}

func NewSessionDefault(sessionService SessionService) *DefaultSessionRoute {
	return &DefaultSessionRoute{SessionService: sessionService}
}

func (s *DefaultSessionRoute) GetSessions(c echo.Context) error {
	sessions, apierr := s.SessionService.GetSessions(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, sessions)
}

func (s *DefaultSessionRoute) GetSession(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierr := apierror.NewInvalidParamTypeError("id", "uuid")
		return c.JSON(apierr.Code(), apierr)
	}

	session, apierr := s.SessionService.GetSession(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, session)
}

func (s *DefaultSessionRoute) CreateSession(c echo.Context) error {
	var req dto.SessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	session, apierr := s.SessionService.CreateSession(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, session)
}

func (s *DefaultSessionRoute) UpdateSession(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierr := apierror.NewInvalidParamTypeError("id", "uuid")
		return c.JSON(apierr.Code(), apierr)
	}

	var req dto.SessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	session, apierr := s.SessionService.UpdateSession(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, session)
}

func (s *DefaultSessionRoute) DeleteSession(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierr := apierror.NewInvalidParamTypeError("id", "uuid")
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := s.SessionService.DeleteSession(c.Request().Context(), id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Session deleted"})
}
