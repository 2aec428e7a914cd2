// Package validate turns request-DTO validation failures into the
// field/message pairs the API returns on 400s.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	// Report fields under their wire names, not Go names.
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return val
}

// Struct validates s and returns one FieldError per failed constraint, or
// nil when s is valid.
func Struct(s any) []FieldError {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "", Message: "invalid request payload"}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", displayName(fe.Field()))
	case "email":
		return "Please include a valid email"
	case "min":
		if fe.Field() == "password" {
			return fmt.Sprintf("Please enter a password with %s or more characters", fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters", displayName(fe.Field()), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", displayName(fe.Field()), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", displayName(fe.Field()))
	}
}

func displayName(field string) string {
	if field == "" {
		return "Field"
	}
	field = strings.ReplaceAll(field, "_", " ")
	return strings.ToUpper(field[:1]) + field[1:]
}
