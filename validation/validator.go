package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hanksha/venue-booking-backend/apperrors"
)

type Validator struct {
	validate *validator.Validate
}

// New reports field errors by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")

		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: v}
}

// Struct validates tagged fields and returns an apperrors validation error listing every failed
// field by its JSON name.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)

	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors

	if !errors.As(err, &validationErrs) {
		return apperrors.Validation(err.Error(), nil)
	}

	fields := map[string]string{}

	for _, fe := range validationErrs {
		fields[fieldPath(fe)] = translate(fe)
	}

	return apperrors.Validation("invalid request", map[string]any{"fields": fields})
}

// fieldPath drops the top level struct name from the namespace: Request.customer.email becomes
// customer.email.
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")

	if !found {
		return fe.Field()
	}

	return path
}

func translate(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid id"
	case "datetime":
		return fmt.Sprintf("must match the format %s", fe.Param())
	case "dive":
		return "is invalid"
	}

	return fmt.Sprintf("failed the %q check", fe.Tag())
}

// ID checks that id can be a stored identifier.
func (v *Validator) ID(id string) error {
	return v.validate.Var(id, "required,uuid")
}
