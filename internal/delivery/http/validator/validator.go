// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	playgroundvalidator "github.com/go-playground/validator/v10"

	domainerrors "goveggie/internal/domain/errors"
)

// EchoValidator wraps the validator instance so struct tags are enforced on Bind targets.
type EchoValidator struct {
	validate *playgroundvalidator.Validate
}

// New creates a validator for the Echo server.
func New() *EchoValidator {
	return &EchoValidator{
		validate: playgroundvalidator.New(playgroundvalidator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
