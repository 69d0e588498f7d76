package response

import (
	"errors"
	"net/http"

	"github.com/nivel36/janus/internal/domain/employee"
	"github.com/nivel36/janus/internal/domain/shift"
	"github.com/nivel36/janus/internal/domain/worksite"
	"github.com/nivel36/janus/internal/pkg/validator"
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
	case errors.Is(err, shift.ErrWorkShiftNotFound):
		NotFound(w, "Work shift not found")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, worksite.ErrWorksiteNotFound):
		NotFound(w, "Worksite not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
