package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/pkordes/travel-agency/backend/internal/domain"
)

// validate is safe for concurrent use and caches struct metadata, so one
// instance serves the whole process.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their wire name: FirstName -> firstName.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		r := []rune(f.Name)
		r[0] = unicode.ToLower(r[0])
		return string(r)
	})
	if err := v.RegisterValidation("phone", isPhone); err != nil {
		panic(fmt.Sprintf("service: register phone validation: %v", err))
	}
	return v
}

// phonePattern allows an optional leading +, then digits, spaces, dashes and
// parentheses. isPhone additionally requires at least six digits.
var phonePattern = regexp.MustCompile(`^\+?[0-9 ()\-]{6,20}$`)

func isPhone(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if !phonePattern.MatchString(s) {
		return false
	}
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 6
}

func validateClient(c domain.Client) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("service.validateClient: %w", err)
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return &domain.ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "phone":
		return "must be a valid phone number"
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed %s:%s", fe.Tag(), fe.Param())
		}
		return "failed " + fe.Tag()
	}
}
