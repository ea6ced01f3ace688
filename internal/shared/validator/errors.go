package validator

import (
	"errors"
	"fmt"

	sharedError "github.com/cokeke26/fenats/internal/shared/error"
	"github.com/go-playground/validator/v10"
)

// ToErrorResponse converts gin binding/validator errors into a standardized response.
func ToErrorResponse(err error) (*sharedError.ErrorResponse, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	if len(validationErrors) == 0 {
		return nil, false
	}

	// Only the first failure is reported
	resp := sharedError.ValidationFailed
	resp.Message = getErrorMessage(validationErrors[0])
	return &resp, true
}

func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("El campo '%s' es obligatorio.", fe.Field())
	case "email":
		return "El correo electrónico no es válido."
	case "min":
		return fmt.Sprintf("'%s' debe tener al menos %s caracteres.", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("'%s' admite como máximo %s caracteres.", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("'%s' debe ser uno de: %s.", fe.Field(), fe.Param())
	case "rut":
		return "El RUT no es válido. (ej: 12.345.678-K)"
	default:
		return fmt.Sprintf("El campo '%s' no es válido.", fe.Field())
	}
}
