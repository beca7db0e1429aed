package validators

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator adapts go-playground/validator to Echo's Validator interface
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator with struct-tag validation enabled
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks a bound request struct against its validate tags
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
