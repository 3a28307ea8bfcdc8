// Package validation rejects malformed or referentially-invalid requests
// before they reach a service's persistence calls. Tag-level rules run through
// a shared validator instance; cross-field, conditional and existence rules
// are explicit so all failures for a request accumulate into one response.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"psicoagenda/cmd/internal/utils/validators"
)

// New builds the shared validator instance: field names come from json tags
// and the custom date/time rules are registered.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("iso8601", validators.IsIso8601)
	_ = v.RegisterValidation("dateonly", validators.IsDateOnly)
	return v
}
