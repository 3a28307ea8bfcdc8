package routes

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"psicoagenda/cmd/internal/dto"
	"psicoagenda/cmd/internal/utils/apierror"
)

type PatientService interface {
	GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, apierror.ErrorResponse)
	GetPatients(ctx context.Context) ([]*dto.PatientResponse, apierror.ErrorResponse)
	CreatePatient(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, apierror.ErrorResponse)
	UpdatePatient(ctx context.Context, id uuid.UUID, req *dto.PatientRequest) (*dto.PatientResponse, apierror.ErrorResponse)
	DeletePatient(ctx context.Context, id uuid.UUID) apierror.ErrorResponse
}

type DefaultPatientRoute struct {
	PatientService PatientService
}

func NewPatientDefault(patientService PatientService) *DefaultPatientRoute {
	return &DefaultPatientRoute{PatientService: patientService}
}

func (p *DefaultPatientRoute) GetPatients(c echo.Context) error {
	patients, apierr := p.PatientService.GetPatients(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, patients)
}

func (p *DefaultPatientRoute) GetPatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierr := apierror.NewInvalidParamTypeError("id", "uuid")
		return c.JSON(apierr.Code(), apierr)
	}

	patient, apierr := p.PatientService.GetPatient(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, patient)
}

func (p *DefaultPatientRoute) CreatePatient(c echo.Context) error {
	var req dto.PatientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	patient, apierr := p.PatientService.CreatePatient(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, patient)
}

func (p *DefaultPatientRoute) UpdatePatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierr := apierror.NewInvalidParamTypeError("id", "uuid")
		return c.JSON(apierr.Code(), apierr)
	}

	var req dto.PatientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	patient, apierr := p.PatientService.UpdatePatient(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, patient)
}

func (p *DefaultPatientRoute) DeletePatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierr := apierror.NewInvalidParamTypeError("id", "uuid")
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := p.PatientService.DeletePatient(c.Request().Context(), id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Patient deleted"})
}
