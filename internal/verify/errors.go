package verify

import (
	"net/http"

	sharedError "github.com/cokeke26/fenats/internal/shared/error"
)

const (
	unknownToken = "UNKNOWN_VERIFICATION_TOKEN" // errInfo
)

var (
	ErrUnknownToken = sharedError.NewDomainError(unknownToken)
)

func init() {
	sharedError.RegisterDomainErrorResponse(unknownToken, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "VERIFY-001",
		Message: "Credencial no válida.",
	})
}
