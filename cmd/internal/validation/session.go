package validation

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"

	"psicoagenda/cmd/internal/domain"
	"psicoagenda/cmd/internal/dto"
	"psicoagenda/cmd/internal/utils/apierror"
)

type SessionValidator struct {
	validate *validator.Validate
}

func NewSessionValidator(validate *validator.Validate) *SessionValidator {
	return &SessionValidator{validate: validate}
}

func (s *SessionValidator) Validate(ctx context.Context, uow domain.UnitOfWork, req *dto.SessionRequest) apierror.ErrorResponse {
	fieldErrors := apierror.CollectFieldErrors(s.validate.Struct(req))

	if req.PatientID != uuid.Nil {
		patient, err := uow.Patients().FindByID(ctx, req.PatientID)
		if err != nil {
			log.Errorf("failed to check patient %s existence: %v", req.PatientID, err)
			return apierror.InternalServerError
		}
		if patient == nil {
			fieldErrors = append(fieldErrors, apierror.FieldError{
				Field: "patientId", Message: "patient not found",
			})
		}
	}

	// The appointment link is optional, but when given it must resolve.
	if req.AppointmentID != nil {
		if *req.AppointmentID == uuid.Nil {
			fieldErrors = append(fieldErrors, apierror.FieldError{
				Field: "appointmentId", Message: "appointment not found",
			})
		} else {
			appt, err := uow.Appointments().FindByID(ctx, *req.AppointmentID)
			if err != nil {
				log.Errorf("failed to check appointment %s existence: %v", *req.AppointmentID, err)
				return apierror.InternalServerError
			}
			if appt == nil {
				fieldErrors = append(fieldErrors, apierror.FieldError{
					Field: "appointmentId", Message: "appointment not found",
				})
			}
		}
	}

	if len(fieldErrors) > 0 {
		return apierror.NewValidation(fieldErrors)
	}
	return nil
}

type SessionNoteValidator struct {
	validate *validator.Validate
}

func NewSessionNoteValidator(validate *validator.Validate) *SessionNoteValidator {
	return &SessionNoteValidator{validate: validate}
}

func (s *SessionNoteValidator) Validate(_ context.Context, req *dto.SessionNoteRequest) apierror.ErrorResponse {
	if err := s.validate.Struct(req); err != nil {
		return apierror.FromValidationError(err)
	}
	return nil
}
