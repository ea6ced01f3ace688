package member

import (
	"net/http"

	sharedError "github.com/cokeke26/fenats/internal/shared/error"
)

const (
	memberNotFound = "MEMBER_NOT_FOUND" // errInfo
	invalidRut     = "INVALID_RUT"      // errInfo
)

var (
	ErrMemberNotFound = sharedError.NewDomainError(memberNotFound)
	ErrInvalidRut     = sharedError.NewDomainError(invalidRut)
)

func init() {
	sharedError.RegisterDomainErrorResponse(memberNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "MEMBER-001",
		Message: "Socio no encontrado.",
	})

	sharedError.RegisterDomainErrorResponse(invalidRut, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "MEMBER-002",
		Message: "El RUT no es válido.",
	})
}
