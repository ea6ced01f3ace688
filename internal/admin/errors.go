package admin

import (
	"net/http"

	sharedError "github.com/cokeke26/fenats/internal/shared/error"
)

const (
	adminForbidden     = "ADMIN_FORBIDDEN"      // errInfo
	adminAlreadyExists = "ADMIN_ALREADY_EXISTS" // errInfo
	adminNotFound      = "ADMIN_NOT_FOUND"      // errInfo
)

var (
	ErrForbidden          = sharedError.NewDomainError(adminForbidden)
	ErrAdminAlreadyExists = sharedError.NewDomainError(adminAlreadyExists)
	ErrAdminNotFound      = sharedError.NewDomainError(adminNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(adminForbidden, sharedError.ErrorResponse{
		Status:  http.StatusForbidden,
		Code:    "ADMIN-001",
		Message: "No tiene permisos para esta operación.",
	})

	sharedError.RegisterDomainErrorResponse(adminAlreadyExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "ADMIN-002",
		Message: "Ya existe un administrador con ese correo.",
	})

	sharedError.RegisterDomainErrorResponse(adminNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "ADMIN-003",
		Message: "Administrador no encontrado.",
	})
}
