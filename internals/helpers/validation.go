package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Shared validator instance; DTOs declare their rules via struct tags so
// create and edit flows validate identically.
var Validate = validator.New()

// ValidationErrorMap converts validator errors into the per-field shape
// JsonValidationError expects. Non-validator errors land under "_".
func ValidationErrorMap(err error) map[string][]string {
	out := map[string][]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "This field is required."
		case "email":
			msg = "Invalid email format."
		case "min":
			msg = "Must be at least " + fe.Param() + " characters."
		case "max":
			msg = "Must be at most " + fe.Param() + " characters."
		case "oneof":
			msg = "Must be one of: " + fe.Param() + "."
		case "datetime":
			msg = "Invalid date format."
		case "hexcolor":
			msg = "Must be a hex color like #AABBCC."
		default:
			msg = "Invalid value."
		}
		out[field] = append(out[field], msg)
	}
	return out
}
