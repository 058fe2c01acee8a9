package response

import (
	"errors"
	"net/http"

	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, attendance.ErrMissingFilePath):
		BadRequest(w, "No file URL or path provided", nil)
	case errors.Is(err, attendance.ErrFileNotFound):
		BadRequest(w, "File not found", nil)
	case errors.Is(err, attendance.ErrDownloadFailed):
		BadRequest(w, "Could not download file", nil)
	case errors.Is(err, attendance.ErrMissingColumns):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrEmptyFile):
		BadRequest(w, "CSV contains no data rows", nil)
	case errors.Is(err, attendance.ErrEmployeeIDRequired):
		BadRequest(w, "employee_id query parameter is required", nil)
	case errors.Is(err, attendance.ErrInvalidMonth):
		BadRequest(w, "month must be MM/YYYY", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
