package response

import (
	"errors"
	"net/http"

	"github.com/rhpro/folha-backend-go/internal/domain/advance"
	"github.com/rhpro/folha-backend-go/internal/domain/auth"
	"github.com/rhpro/folha-backend-go/internal/domain/employee"
	"github.com/rhpro/folha-backend-go/internal/domain/evolution"
	"github.com/rhpro/folha-backend-go/internal/domain/launch"
	"github.com/rhpro/folha-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrEmailNotAuthorized):
		Unauthorized(w, "Email not authorized")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "CONFLICT", "Email already registered")

	// Launch domain errors
	case errors.Is(err, launch.ErrLaunchNotFound):
		NotFound(w, "Launch not found")

	// Advance domain errors
	case errors.Is(err, advance.ErrInvalidPeriod):
		BadRequest(w, "Period must be YYYY-MM", nil)

	// Evolution domain errors
	case errors.Is(err, evolution.ErrEvolutionNotFound):
		NotFound(w, "Salary evolution entry not found")
	case errors.Is(err, evolution.ErrTableMissing):
		// The history table is optional; signal "setup required" so the
		// client can render instructions instead of a failure.
		Conflict(w, "SCHEMA_MISSING", "Salary evolution table does not exist yet")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
