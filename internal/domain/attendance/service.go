package attendance

import "context"

type AttendanceService interface {
	// CheckIn records the employee's arrival for today, classifying
	// lateness against the work-day policy.
	CheckIn(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// CheckOut records the employee's departure and computes overtime.
	CheckOut(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// MarkByMode resolves the employee by NIC and dispatches to CheckIn or
	// CheckOut based on the scanned mode.
	MarkByMode(ctx context.Context, req MarkRequest) (AttendanceResponse, error)

	// AutoCloseDay closes today's open records at the official end of
	// work. Idempotent; intended to run once daily after the end of work.
	AutoCloseDay(ctx context.Context) (int, error)
}
