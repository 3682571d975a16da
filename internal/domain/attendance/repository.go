package attendance

import (
	"context"
	"time"
)

// AttendanceRepository persists the ledger. Writes are single-row and
// filter-qualified: CreateCheckIn must be conditional on no record existing
// for (employee, day) and CloseCheckOut on the record still being open, so
// a lost race surfaces as the corresponding domain error instead of a
// duplicate or double write.
type AttendanceRepository interface {
	// CreateCheckIn inserts the day's record. Returns ErrAlreadyCheckedIn
	// when a record for (employeeID, day) already exists.
	CreateCheckIn(ctx context.Context, rec AttendanceRecord) (AttendanceRecord, error)

	// GetByEmployeeAndDate returns ErrRecordNotFound when the employee has
	// no record for the day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, day time.Time) (AttendanceRecord, error)

	// CloseCheckOut sets check_out and overtime on the record, conditional
	// on check_out still being NULL. Returns ErrAlreadyCheckedOut when the
	// record was closed concurrently.
	CloseCheckOut(ctx context.Context, id string, checkOut time.Time, overtimeHours float64) (AttendanceRecord, error)

	// CloseOpenForDay force-closes every record of the day that has a
	// check-in but no check-out, setting check_out to endOfWork and
	// overtime to zero. Already-closed records are excluded by the filter,
	// which is what makes the sweep idempotent. Returns the number of
	// records closed.
	CloseOpenForDay(ctx context.Context, day time.Time, endOfWork time.Time) (int, error)
}
