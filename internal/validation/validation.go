// Package validation converts request payloads into constraint-checked
// values. It is a pure function of the payload plus the declared tags and
// never touches the database.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors maps a JSON field name to the list of human-readable messages
// describing every constraint that field violated. All violations are
// collected in one pass so a client can fix everything in one round trip.
type Errors map[string][]string

// Error implements the error interface.
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	return fmt.Sprintf("validation failed for fields: %s", strings.Join(fields, ", "))
}

// Validator checks payload structs against their validate tags.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports violations under JSON field names.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Check validates payload and returns nil or the complete set of
// field-level violations.
func (v *Validator) Check(payload interface{}) error {
	err := v.validate.Struct(payload)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := make(Errors, len(validationErrors))
	for _, fe := range validationErrors {
		out[fe.Field()] = append(out[fe.Field()], messageFor(fe))
	}
	return out
}

// messageFor renders a violation the way the API has always worded them.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Missing data for required field."
	case "email":
		return "Not a valid email address."
	case "max":
		return fmt.Sprintf("Longer than maximum length %s.", fe.Param())
	case "min":
		return fmt.Sprintf("Shorter than minimum length %s.", fe.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s.", fe.Param())
	default:
		return fmt.Sprintf("Invalid value for field '%s'.", fe.Field())
	}
}
