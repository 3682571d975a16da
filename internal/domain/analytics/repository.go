package analytics

import (
	"context"
	"time"

	"github.com/warelogix/warehouse-backend-go/internal/domain/attendance"
)

// AttendanceReader is the read-side slice of the ledger the aggregations
// need. Keeping it separate from the write-side repository lets the
// aggregation logic stay pure over plain records.
type AttendanceReader interface {
	// RecordsBetween returns every record with from <= work_day <= to.
	RecordsBetween(ctx context.Context, from, to time.Time) ([]attendance.AttendanceRecord, error)
}
