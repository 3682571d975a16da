package response

import (
	"errors"
	"net/http"

	"github.com/warelogix/warehouse-backend-go/internal/domain/attendance"
	"github.com/warelogix/warehouse-backend-go/internal/domain/auth"
	"github.com/warelogix/warehouse-backend-go/internal/domain/employee"
	"github.com/warelogix/warehouse-backend-go/internal/domain/leave"
	"github.com/warelogix/warehouse-backend-go/internal/pkg/validator"
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
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrManagerAccessRequired):
		Forbidden(w, "Manager role required")
	case errors.Is(err, auth.ErrOAuthExchangeFailed):
		Unauthorized(w, "Google sign-in failed")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is inactive")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNoCheckInFound):
		BadRequest(w, "No check-in found for today", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrInvalidMode):
		BadRequest(w, "Mode must be check-in or check-out", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrNotOwner):
		Forbidden(w, "Only the requester may modify this leave request")
	case errors.Is(err, leave.ErrNotPending):
		Conflict(w, "Leave request is no longer pending")
	case errors.Is(err, leave.ErrInvalidStatus):
		BadRequest(w, "Status must be Approved or Rejected", nil)
	case errors.Is(err, leave.ErrNoRequestsFound):
		NotFound(w, "No leave requests found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
