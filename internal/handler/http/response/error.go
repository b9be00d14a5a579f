package response

import (
	"errors"
	"net/http"

	"github.com/mariana-dist/attendance-backend-go/internal/domain/employee"
	"github.com/mariana-dist/attendance-backend-go/internal/domain/imports"
	"github.com/mariana-dist/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidPIN):
		BadRequest(w, "PIN must be numeric", nil)
	case errors.Is(err, employee.ErrNoFieldsToUpdate):
		BadRequest(w, "No fields to update", nil)

	// Import domain errors
	case errors.Is(err, imports.ErrEmptyFile):
		BadRequest(w, "Import file has no data rows", nil)
	case errors.Is(err, imports.ErrUnreadableCSV):
		BadRequest(w, "Import file is not readable CSV", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
