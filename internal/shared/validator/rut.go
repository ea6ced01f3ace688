package validator

import (
	"github.com/cokeke26/fenats/internal/shared/rut"
	"github.com/go-playground/validator/v10"
)

// ValidateRut accepts any spelling that normalizes to a RUT
// ("10.017.452-9", "10017452K", ...). Empty values are left to "required".
func ValidateRut(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return rut.Normalize(value) != ""
}
