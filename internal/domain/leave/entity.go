package leave

import "time"

type LeaveType string

const (
	TypeAnnual LeaveType = "Annual"
	TypeSick   LeaveType = "Sick"
	TypeUnpaid LeaveType = "Unpaid"
)

func ValidLeaveType(t LeaveType) bool {
	switch t {
	case TypeAnnual, TypeSick, TypeUnpaid:
		return true
	}
	return false
}

type LeaveStatus string

const (
	StatusPending  LeaveStatus = "Pending"
	StatusApproved LeaveStatus = "Approved"
	StatusRejected LeaveStatus = "Rejected"
)

// AnnualQuotaDays is the yearly leave allowance. The quota is a soft
// limit: requests past it are still accepted, the remaining balance just
// floors at zero.
const AnnualQuotaDays = 21

// LeaveRequest is one leave application. It may be edited or deleted by
// its owner only while Pending; a manager moves it Pending→Approved or
// Pending→Rejected, after which it is immutable.
type LeaveRequest struct {
	ID         string
	EmployeeID string

	LeaveType LeaveType
	StartDate time.Time
	EndDate   time.Time
	Reason    string

	AttachmentURL *string

	Status LeaveStatus
	// Year is derived from StartDate at create/update time so balance
	// queries never depend on parsing dates.
	Year int

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	EmployeeName *string
}

// InclusiveDays counts the calendar days spanned by the request, counting
// both the start and end dates.
func (r LeaveRequest) InclusiveDays() int {
	return InclusiveDayCount(r.StartDate, r.EndDate)
}

func InclusiveDayCount(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
