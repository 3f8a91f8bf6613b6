// Package validator plugs go-playground validation into echo's Validator slot.
package validator

import (
	domainerrors "shopapi/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a single validator instance; it caches struct
// metadata, so one instance serves the whole server.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the echo validator.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks the bound request struct and converts failures into the
// application's validation error so the error handler renders a 400.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrValidation.WithDetails(err.Error())
	}

	return nil
}
