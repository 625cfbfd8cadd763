// Package validator wraps go-playground/validator with a shared instance and
// uniform error messages. Structs are checked with `validate` tags; single
// values such as CLI flags can be checked with Var.
package validator

import (
	"errors"
	"fmt"
	"time"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error of the chain returned when validation fails.
var ErrValidationFailed = errors.New("validation failed")

// validator is the shared instance, created on package load.
var validator *gvalidator.Validate

// Example: "'WatchedAddress': value '0x' does not meet the requirements for the 'eth_addr' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	// tracer_timeout validates positive Go duration literals kept as strings
	// because they are forwarded verbatim to the node, e.g. "10s" or "1m30s".
	if err := validator.RegisterValidation("tracer_timeout", isTracerTimeout); err != nil {
		panic(fmt.Sprintf("validator: register tracer_timeout: %v", err))
	}
}

func isTracerTimeout(fl gvalidator.FieldLevel) bool {
	d, err := time.ParseDuration(fl.Field().String())
	return err == nil && d > 0
}

// formatError turns validator errors into ErrValidationFailed joined with
// one message per field. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` struct tags.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// Var checks a single value against tag, e.g. Var(addr, "required,eth_addr").
func Var(value any, tag string) error {
	if err := validator.Var(value, tag); err != nil {
		return formatError(err)
	}

	return nil
}
