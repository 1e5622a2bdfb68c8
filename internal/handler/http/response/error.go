package response

import (
	"errors"
	"net/http"

	"github.com/turnos-app/turnos-backend-go/internal/domain/roster"
	"github.com/turnos-app/turnos-backend-go/internal/domain/shift"
	"github.com/turnos-app/turnos-backend-go/internal/pkg/dateutil"
	"github.com/turnos-app/turnos-backend-go/internal/pkg/validator"
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
	// Roster domain errors
	case errors.Is(err, roster.ErrWorkerNotFound):
		NotFound(w, "Worker not found")

	// Shift domain errors
	case errors.Is(err, shift.ErrInvalidDay):
		BadRequest(w, "Invalid day, use YYYY-MM-DD", nil)

	// Week window errors
	case errors.Is(err, dateutil.ErrBadWindow):
		BadRequest(w, "Malformed week window", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
