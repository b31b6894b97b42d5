package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// validateStruct runs the struct tag rules and returns the first failure as a ValidationError
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	fieldErr := validationErrors[0]
	return &ValidationError{
		Field:   fieldErr.Field(),
		Message: validationMessage(fieldErr),
	}
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldErr.Field())
	case "latitude":
		return fmt.Sprintf("%s must be a valid latitude between -90 and 90", fieldErr.Field())
	case "longitude":
		return fmt.Sprintf("%s must be a valid longitude between -180 and 180", fieldErr.Field())
	default:
		return fmt.Sprintf("%s failed the %s rule", fieldErr.Field(), fieldErr.Tag())
	}
}
