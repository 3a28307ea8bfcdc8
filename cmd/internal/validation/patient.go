package validation

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"psicoagenda/cmd/internal/dto"
	"psicoagenda/cmd/internal/utils"
	"psicoagenda/cmd/internal/utils/apierror"
)

type PatientValidator struct {
	validate *validator.Validate
}

func NewPatientValidator(validate *validator.Validate) *PatientValidator {
	return &PatientValidator{validate: validate}
}

func (p *PatientValidator) Validate(_ context.Context, req *dto.PatientRequest) apierror.ErrorResponse {
	fieldErrors := apierror.CollectFieldErrors(p.validate.Struct(req))

	if birth, err := time.Parse("2006-01-02", req.BirthDate); err == nil {
		if !birth.Before(utils.NowUTC()) {
			fieldErrors = append(fieldErrors, apierror.FieldError{
				Field: "birthDate", Message: "must be in the past",
			})
		}
	}

	if len(fieldErrors) > 0 {
		return apierror.NewValidation(fieldErrors)
	}
	return nil
}
