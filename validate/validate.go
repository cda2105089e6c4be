package validate

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidInput is wrapped by every rejection.
var ErrInvalidInput = errors.New("validate: invalid input")

// Limits shared by the visualizers.
const (
	MinNodes         = 2
	MaxNodes         = 10
	MaxWeight        = 1_000_000
	MaxTextRunes     = 50
	MaxPartitionText = 16 // output grows as 2^(n-1)
	MaxValues        = 64
	MaxQueries       = 32
	MaxTreeNodes     = 32
	MaxOps           = 32
	MaxWords         = 16
	MaxWordRunes     = 20
)

// validate is a singleton validator instance.
var validate = validator.New()

// check runs the struct tags of v.
func check(v any) error {
	if err := validate.Struct(v); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// invalid wraps ErrInvalidInput with a field-prefixed message.
func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidInput, field, fmt.Sprintf(format, args...))
}

// formatValidationError converts the first validator error to a readable,
// ErrInvalidInput-wrapped error.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	for _, e := range validationErrs {
		field := e.Namespace()
		param := e.Param()

		switch e.Tag() {
		case "required":
			return invalid(field, "field is required")
		case "min":
			return invalid(field, "must be at least %s", param)
		case "max":
			return invalid(field, "must not exceed %s", param)
		case "oneof":
			return invalid(field, "must be one of %s", param)
		case "alpha", "lowercase":
			return invalid(field, "must contain only lowercase letters a-z")
		default:
			return invalid(field, "validation failed (%s)", e.Tag())
		}
	}

	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}
