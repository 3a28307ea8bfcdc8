package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is what services return instead of plain errors: the value
// carries its HTTP status and marshals directly as the response body.
type ErrorResponse interface {
	Code() int
	Error() string
}

type SimpleError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *SimpleError) Code() int { return e.StatusCode }

func (e *SimpleError) Error() string { return e.Message }

func NewSimple(code int, message string) *SimpleError {
	return &SimpleError{StatusCode: code, Message: message}
}

func NewNotFound(what string) *SimpleError {
	return NewSimple(http.StatusNotFound, fmt.Sprintf("%s not found", what))
}

func NewInvalidParamTypeError(name, kind string) *SimpleError {
	return NewSimple(http.StatusBadRequest, fmt.Sprintf("Parameter %s must be a valid %s", name, kind))
}

var (
	InternalServerError = NewSimple(http.StatusInternalServerError, "Something went wrong, please try again later")
	MalformedBodyError  = NewSimple(http.StatusBadRequest, "Malformed request body")
)

// FieldError is one failed validation rule, named by the JSON field it hit.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationError) Code() int { return http.StatusBadRequest }

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s)", len(e.Errors))
}

func NewValidation(fieldErrors []FieldError) *ValidationError {
	return &ValidationError{Errors: fieldErrors}
}

// FromValidationError translates the accumulated rule failures of a
// validator.Validate Struct call into one 400 response.
func FromValidationError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return MalformedBodyError
	}
	return NewValidation(CollectFieldErrors(err))
}

// CollectFieldErrors flattens a validator.Validate Struct error into field
// errors; a nil or unrelated error yields none.
func CollectFieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fieldErrors := make([]FieldError, len(verrs))
	for i, fe := range verrs {
		fieldErrors[i] = FieldError{Field: fe.Field(), Message: messageFor(fe)}
	}
	return fieldErrors
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must not exceed %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed rule %q", fe.Tag())
	}
}
