package validation

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// Error reports client-side validation failures. Fields maps each failing
// field name to its messages, mirroring the API's 422 error shape.
type Error struct {
	Fields map[string][]string
}

// Error implements the error interface.
func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, messages := range e.Fields {
		parts = append(parts, field+" "+strings.Join(messages, ", "))
	}
	return "validation: " + strings.Join(parts, "; ")
}

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Use json tag names for field names in error messages
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return toSnakeCase(fld.Name)
			}
			return name
		})
	})
	return validate
}

// Validate validates a struct using `validate` tags
// (e.g. `validate:"required,min=1,max=255"`). It returns a *Error
// carrying per-field messages, or nil when the struct is valid.
func Validate(s any) error {
	v := getValidator()
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return &Error{Fields: map[string][]string{"_": {"validation failed"}}}
	}

	fields := make(map[string][]string, len(validationErrors))
	for _, e := range validationErrors {
		name := e.Field()
		fields[name] = append(fields[name], formatValidationError(e))
	}
	return &Error{Fields: fields}
}

// RequireOneOf fails unless at least one of the named values is non-zero.
// Used for operations like transcription creation that accept either a
// track ID or a file.
func RequireOneOf(pairs map[string]bool) error {
	for _, present := range pairs {
		if present {
			return nil
		}
	}
	names := make([]string, 0, len(pairs))
	for name := range pairs {
		names = append(names, name)
	}
	sort.Strings(names)
	return &Error{
		Fields: map[string][]string{
			"_": {fmt.Sprintf("one of %s is required", strings.Join(names, ", "))},
		},
	}
}

// formatValidationError creates a human-readable error message.
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + e.Param()
	case "max":
		return "must be at most " + e.Param()
	case "url":
		return "must be a valid URL"
	case "oneof":
		return "must be one of: " + e.Param()
	case "gt":
		return "must be greater than " + e.Param()
	case "datetime":
		return "must match format " + e.Param()
	default:
		return "is invalid"
	}
}

// toSnakeCase converts a field name to snake_case.
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune('_')
		}
		if r >= 'A' && r <= 'Z' {
			result.WriteRune(r + 32)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
