package attendance

import "time"

// MarkMode selects which ledger operation a badge scan drives.
type MarkMode string

const (
	ModeCheckIn  MarkMode = "check-in"
	ModeCheckOut MarkMode = "check-out"
)

// AttendanceRecord is the ledger entry for one employee on one calendar
// day. At most one record exists per (employee, work day); it is created by
// the first check-in and mutated once by check-out (or the auto-close
// sweep), never deleted.
type AttendanceRecord struct {
	ID         string
	EmployeeID string

	// WorkDay is the calendar day the record belongs to, truncated to
	// midnight in the server's local timezone.
	WorkDay time.Time

	CheckIn       *time.Time
	CheckOut      *time.Time
	IsLate        bool
	OvertimeHours float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Open reports whether the record has a check-in but no check-out yet.
func (r AttendanceRecord) Open() bool {
	return r.CheckIn != nil && r.CheckOut == nil
}
