package importer

import (
	"net/http"

	sharedError "github.com/cokeke26/fenats/internal/shared/error"
)

const (
	invalidSpreadsheet = "INVALID_SPREADSHEET" // errInfo
	importAborted      = "IMPORT_ABORTED"      // errInfo
	missingFile        = "IMPORT_MISSING_FILE" // errInfo
	fileTooLarge       = "IMPORT_FILE_TOO_LARGE"
)

var (
	ErrInvalidSpreadsheet = sharedError.NewDomainError(invalidSpreadsheet)
	ErrImportAborted      = sharedError.NewDomainError(importAborted)
	ErrMissingFile        = sharedError.NewDomainError(missingFile)
	ErrFileTooLarge       = sharedError.NewDomainError(fileTooLarge)
)

func init() {
	sharedError.RegisterDomainErrorResponse(invalidSpreadsheet, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "IMPORT-001",
		Message: "El archivo no es una planilla válida (.xlsx o .csv).",
	})

	sharedError.RegisterDomainErrorResponse(importAborted, sharedError.ErrorResponse{
		Status:  http.StatusInternalServerError,
		Code:    "IMPORT-002",
		Message: "La importación se interrumpió. Las filas anteriores al error quedaron guardadas.",
	})

	sharedError.RegisterDomainErrorResponse(missingFile, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "IMPORT-003",
		Message: "Debe adjuntar un archivo en el campo 'file'.",
	})

	sharedError.RegisterDomainErrorResponse(fileTooLarge, sharedError.ErrorResponse{
		Status:  http.StatusRequestEntityTooLarge,
		Code:    "IMPORT-004",
		Message: "El archivo supera el tamaño máximo permitido.",
	})
}
