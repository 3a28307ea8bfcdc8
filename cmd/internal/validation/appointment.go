package validation

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"

	"psicoagenda/cmd/internal/domain"
	"psicoagenda/cmd/internal/domain/entity"
	"psicoagenda/cmd/internal/dto"
	"psicoagenda/cmd/internal/utils/apierror"
)

// The enum rules read the declared value lists so a new mode or status needs
// no change here.
var (
	modeValues   = enumValues(entity.Modes)
	statusValues = enumValues(entity.Statuses)
)

func enumValues[T ~string](vals []T) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = string(v)
	}
	return strings.Join(parts, " ")
}

type AppointmentValidator struct {
	validate *validator.Validate
}

func NewAppointmentValidator(validate *validator.Validate) *AppointmentValidator {
	return &AppointmentValidator{validate: validate}
}

// Validate runs the tag rules, the mode/status enum rules, the start/end
// ordering rule, the conditional
// in-person location rule, and the referenced-patient existence check. The
// existence lookup uses the caller's unit of work so the check and the
// subsequent write share one session.
func (a *AppointmentValidator) Validate(ctx context.Context, uow domain.UnitOfWork, req *dto.AppointmentRequest) apierror.ErrorResponse {
	fieldErrors := apierror.CollectFieldErrors(a.validate.Struct(req))

	start, startErr := time.Parse(time.RFC3339, req.StartsAt)
	end, endErr := time.Parse(time.RFC3339, req.EndsAt)
	if startErr == nil && endErr == nil && !end.After(start) {
		fieldErrors = append(fieldErrors, apierror.FieldError{
			Field: "end", Message: "must be after start",
		})
	}

	if req.Mode != "" && !entity.Mode(req.Mode).Valid() {
		fieldErrors = append(fieldErrors, apierror.FieldError{
			Field: "mode", Message: "must be one of: " + modeValues,
		})
	}
	if req.Status != "" && !entity.Status(req.Status).Valid() {
		fieldErrors = append(fieldErrors, apierror.FieldError{
			Field: "status", Message: "must be one of: " + statusValues,
		})
	}

	if req.Mode == string(entity.ModeInPerson) && (req.LocationLink == nil || *req.LocationLink == "") {
		fieldErrors = append(fieldErrors, apierror.FieldError{
			Field: "locationLink", Message: "is required for in-person appointments",
		})
	}

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

	if len(fieldErrors) > 0 {
		return apierror.NewValidation(fieldErrors)
	}
	return nil
}
