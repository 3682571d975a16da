package analytics

import (
	"context"
	"io"
)

// DefaultWindowDays is the trailing window (including today) used by the
// summary endpoints.
const DefaultWindowDays = 5

type AnalyticsService interface {
	DailySummary(ctx context.Context, windowDays int) (AttendanceAnalyticsResponse, error)

	// EmployeeDetails returns the trailing-window day grid for each active
	// employee matching the optional name/NIC filter.
	EmployeeDetails(ctx context.Context, search string) ([]EmployeeDetailRow, error)

	TodayStats(ctx context.Context) (TodayStatsResponse, error)

	// WriteAttendancePDF renders DailySummary plus EmployeeDetails to w.
	WriteAttendancePDF(ctx context.Context, w io.Writer) error

	// WriteAttendanceExcel renders the same aggregate as an xlsx workbook.
	WriteAttendanceExcel(ctx context.Context, w io.Writer) error
}
