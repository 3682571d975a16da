package attendance

import (
	"time"

	"github.com/warelogix/warehouse-backend-go/internal/pkg/validator"
)

// MarkRequest is the payload produced by a badge scan at the gate.
type MarkRequest struct {
	NIC  string `json:"nic"`
	Mode string `json:"mode"`
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.NIC) {
		errs = append(errs, validator.ValidationError{
			Field:   "nic",
			Message: "nic is required",
		})
	}
	if validator.IsEmpty(r.Mode) {
		errs = append(errs, validator.ValidationError{
			Field:   "mode",
			Message: "mode is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	WorkDay       string  `json:"work_day"`
	Status        string  `json:"status"`
	CheckInTime   *string `json:"check_in_time,omitempty"`
	CheckOutTime  *string `json:"check_out_time,omitempty"`
	IsLate        bool    `json:"is_late"`
	OvertimeHours float64 `json:"overtime_hours"`
}

// NewAttendanceResponse maps a ledger record to its transport shape.
func NewAttendanceResponse(rec AttendanceRecord) AttendanceResponse {
	status := "checked_in"
	if rec.CheckOut != nil {
		status = "checked_out"
	}

	return AttendanceResponse{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		WorkDay:       rec.WorkDay.Format("2006-01-02"),
		Status:        status,
		CheckInTime:   formatClock(rec.CheckIn),
		CheckOutTime:  formatClock(rec.CheckOut),
		IsLate:        rec.IsLate,
		OvertimeHours: rec.OvertimeHours,
	}
}

func formatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04:05")
	return &s
}
