package response

import (
	"errors"
	"net/http"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/auth"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/device"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/employee"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/holiday"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/permission"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/punch"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/report"
	"github.com/chronos-hr/attendance-backend-go/internal/pkg/validator"
	"github.com/chronos-hr/attendance-backend-go/internal/pkg/zkteco"
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
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrUnauthorized):
		Unauthorized(w, "Unauthorized")

	// Device domain errors
	case errors.Is(err, device.ErrDeviceNotFound):
		NotFound(w, "Device not found")
	case errors.Is(err, device.ErrDeviceAlreadyRegistered):
		Conflict(w, "Device with this serial number is already registered")
	case errors.Is(err, zkteco.ErrDeviceUnavailable):
		BadGateway(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNoTaken):
		Conflict(w, "Employee number already in use")
	case errors.Is(err, employee.ErrEmployeeNoChecker):
		BadRequest(w, "Employee has no checker uid assigned", nil)
	case errors.Is(err, employee.ErrImportFileMalformed):
		BadRequest(w, "Import file could not be parsed", nil)

	// Calendar domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "A holiday already exists on this date")
	case errors.Is(err, permission.ErrPermissionNotFound):
		NotFound(w, "Permission not found")
	case errors.Is(err, permission.ErrEmptyRange):
		BadRequest(w, "Permission range contains no grantable days", nil)

	// Punch and report domain errors
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch record not found")
	case errors.Is(err, report.ErrEmptyPeriod):
		BadRequest(w, "Report period contains no days", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
