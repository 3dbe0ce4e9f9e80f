// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator that reports fields by their JSON names.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: validate}
}

// Validate checks struct tags and reports failures as ErrValidationFailed with one detail per field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	details := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, describe(fieldErr))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldErr.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fieldErr.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fieldErr.Field(), fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fieldErr.Field(), fieldErr.Param())
	default:
		return fmt.Sprintf("%s failed on %s", fieldErr.Field(), fieldErr.Tag())
	}
}
