package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/warelogix/warehouse-backend-go/internal/domain/attendance"
	"github.com/warelogix/warehouse-backend-go/internal/domain/employee"
	"github.com/warelogix/warehouse-backend-go/internal/handler/http/response"
	"github.com/warelogix/warehouse-backend-go/internal/pkg/qrcode"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	QRBadge(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	employeeRepo      employee.EmployeeRepository
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, employeeRepo employee.EmployeeRepository) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
		employeeRepo:      employeeRepo,
	}
}

// Mark implements AttendanceHandler. The kiosk posts the scanned NIC plus
// the selected mode.
func (a *AttendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Mark decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := a.attendanceService.MarkByMode(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Checked in"
	if resp.Status == "checked_out" {
		message = "Checked out"
	}
	response.SuccessWithMessage(w, message, resp)
}

// QRBadge implements AttendanceHandler. Streams the employee's badge as a
// PNG for printing.
func (a *AttendanceHandlerImpl) QRBadge(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	emp, err := a.employeeRepo.GetByID(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=badge-%s.png", emp.NIC))
	if err := qrcode.WriteBadge(emp.NIC, w); err != nil {
		slog.Error("QRBadge render error", "employee_id", employeeID, "error", err)
	}
}
