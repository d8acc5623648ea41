package validator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	ItemCodeRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// Validator is a validator that validates the given struct.
type Validator interface {
	// Validate validates the given struct
	Validate(s any) error
}

type DefaultValidator struct {
	v *validator.Validate
}

// NewDefaultValidator creates a new default validator.
// It returns a new DefaultValidator and an error if the validator registration fails.
func NewDefaultValidator() (*DefaultValidator, error) {
	v := validator.New()

	// Register custom validators
	if err := v.RegisterValidation("itemcode", validateItemCode); err != nil {
		return nil, fmt.Errorf("register itemcode validator: %w", err)
	}

	return &DefaultValidator{v: v}, nil
}

func (v DefaultValidator) Validate(s any) error {
	return v.v.Struct(s)
}

// ValidationErrorMessage renders a single field error as a human readable
// message.
func ValidationErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "itemcode":
		return "must contain only alphanumeric characters, dashes and underscores"
	default:
		return "is invalid"
	}
}

func validateItemCode(fl validator.FieldLevel) bool {
	return ItemCodeRegex.MatchString(fl.Field().String())
}
