// Package validation checks request payloads.
package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator adapts go-playground/validator to echo.Validator
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator
func New() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate validates a struct against its `validate` tags
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

// NormalizeTerm trims the white space around a search term
func NormalizeTerm(term string) string {
	return strings.TrimSpace(term)
}
