package validators

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance used by all request
// validators.
var Validate = validator.New()

// FieldErrors flattens a validator error into the field->message map
// that ValidationErrorResponse expects.
func FieldErrors(err error) map[string]string {
	out := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["body"] = "Invalid request body!"
		return out
	}

	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = "This field is required!"
		case "email":
			out[field] = "Must be a valid email address!"
		case "min":
			out[field] = "Value is too short! Minimum: " + fe.Param()
		case "max":
			out[field] = "Value is too long! Maximum: " + fe.Param()
		case "oneof":
			out[field] = "Must be one of: " + fe.Param()
		case "url":
			out[field] = "Must be a valid URL!"
		case "unique":
			out[field] = "Values must be distinct!"
		default:
			out[field] = "Invalid value!"
		}
	}
	return out
}
