// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "nearshop/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a shared validator instance for request payloads.
type Validator struct {
	validate *validator.Validate
}

// New creates the Echo request validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks struct tags and maps failures onto the error taxonomy, so
// the error middleware renders them as a 400 response.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
