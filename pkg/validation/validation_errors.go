package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors converts binding and validator errors into
// "field: problem" messages suitable for a 400 response.
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			messages = append(messages, formatSingleError(e))
		}
		return messages
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []string{fmt.Sprintf("%s: must be %s", typeErr.Field, describeKind(typeErr.Type.Kind().String()))}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return []string{"body: malformed JSON"}
	}

	// Not a validation error, return generic message
	return []string{err.Error()}
}

func formatSingleError(e validator.FieldError) string {
	field := e.Field()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", field)
	case "email":
		return fmt.Sprintf("%s: must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s: must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s: must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", field, strings.ReplaceAll(e.Param(), " ", ", "))
	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s: failed validation (%s)", field, e.Tag())
	}
}

func describeKind(kind string) string {
	switch kind {
	case "string":
		return "a string"
	case "int", "int64", "ptr":
		return "a number"
	case "slice":
		return "a list"
	default:
		return "a " + kind
	}
}
