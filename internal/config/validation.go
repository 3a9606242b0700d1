package config

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/valyala/fasttemplate"
)

// ValidationError represents a single validation error with context.
type ValidationError struct {
	FieldPath string // toml field name (e.g. "command_timeout_seconds")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration invalid with %d error(s):\n", len(ve)))
	for i, err := range ve {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("args_template", validateArgsTemplate); err != nil {
		panic(err)
	}

	// Report field names as they appear in the config file.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// validateArgsTemplate checks that a resolvectl argument template parses and
// references only known variables.
func validateArgsTemplate(fl validator.FieldLevel) bool {
	tmpl, err := fasttemplate.NewTemplate(fl.Field().String(), "{", "}")
	if err != nil {
		return false
	}

	known := map[string]interface{}{"interface": "", "ip": "", "domain": ""}
	ok := true
	tmpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if _, found := known[tag]; !found {
			ok = false
		}
		return 0, nil
	})
	return ok
}

// getValidationMessage returns a human-readable message for a validation error.
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "gte":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "lte":
		return fmt.Sprintf("must be <= %s", e.Param())
	case "args_template":
		return "must be a template using only {interface}, {ip} and {domain}"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// Validate checks the configuration and returns all validation errors.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors ValidationErrors
	for _, fieldErr := range err.(validator.ValidationErrors) {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: fieldErr.Field(),
			Message:   getValidationMessage(fieldErr),
		})
	}
	return validationErrors
}
