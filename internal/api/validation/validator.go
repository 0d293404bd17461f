package validation

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/blaisecz/shift-coach/internal/domain"
	"github.com/blaisecz/shift-coach/pkg/problem"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("timezone", func(fl validator.FieldLevel) bool {
		_, err := time.LoadLocation(fl.Field().String())
		return err == nil
	})
	validate.RegisterValidation("shifttype", func(fl validator.FieldLevel) bool {
		return domain.ShiftType(fl.Field().String()).Valid()
	})
}

// Validate validates a struct and returns field errors
func Validate(s interface{}) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []problem.FieldError{{Field: "body", Message: "is invalid"}}
	}

	var fieldErrors []problem.FieldError
	for _, err := range validationErrors {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   toSnakeCase(err.Field()),
			Message: getValidationMessage(err),
		})
	}
	return fieldErrors
}

func getValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + err.Param()
	case "max":
		return "must be at most " + err.Param()
	case "gt":
		return "must be greater than " + err.Param()
	case "lte":
		return "must be at most " + err.Param()
	case "oneof":
		return "must be one of: " + err.Param()
	case "gtfield":
		return "must be greater than " + toSnakeCase(err.Param())
	case "timezone":
		return "must be a valid IANA timezone"
	case "shifttype":
		return "must be one of: morning day evening night rotating off"
	case "datetime":
		return "must be a date in " + err.Param() + " format"
	case "uuid":
		return "must be a UUID"
	default:
		return "is invalid"
	}
}

// toSnakeCase maps a Go field name to its JSON name, keeping initialisms
// together (ClientRequestID becomes client_request_id).
func toSnakeCase(s string) string {
	var result []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			if i > 0 && s[i-1] >= 'a' && s[i-1] <= 'z' {
				result = append(result, '_')
			}
			c += 'a' - 'A'
		}
		result = append(result, c)
	}
	return string(result)
}
