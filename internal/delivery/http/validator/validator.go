// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "savor/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator.Validate instance for Echo.
type echoValidator struct {
	validate *validator.Validate
}

// New creates the Echo request validator.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Failures surface as the domain's
// validation error so the error middleware renders a 400.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
