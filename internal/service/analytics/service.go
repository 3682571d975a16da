package analytics

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/warelogix/warehouse-backend-go/internal/domain/analytics"
	"github.com/warelogix/warehouse-backend-go/internal/domain/attendance"
	"github.com/warelogix/warehouse-backend-go/internal/domain/employee"
	"github.com/warelogix/warehouse-backend-go/internal/pkg/report"
)

type AnalyticsServiceImpl struct {
	analytics.AttendanceReader
	employee.EmployeeRepository
	now func() time.Time
}

func NewAnalyticsService(
	attendanceReader analytics.AttendanceReader,
	employeeRepository employee.EmployeeRepository,
) *AnalyticsServiceImpl {
	return &AnalyticsServiceImpl{
		AttendanceReader:   attendanceReader,
		EmployeeRepository: employeeRepository,
		now:                time.Now,
	}
}

// DailySummary implements analytics.AnalyticsService.
func (a *AnalyticsServiceImpl) DailySummary(ctx context.Context, windowDays int) (analytics.AttendanceAnalyticsResponse, error) {
	if windowDays <= 0 {
		windowDays = analytics.DefaultWindowDays
	}

	total, err := a.EmployeeRepository.CountActive(ctx)
	if err != nil {
		return analytics.AttendanceAnalyticsResponse{}, fmt.Errorf("failed to count employees: %w", err)
	}

	days := a.window(windowDays)
	records, err := a.AttendanceReader.RecordsBetween(ctx, days[0], days[len(days)-1])
	if err != nil {
		return analytics.AttendanceAnalyticsResponse{}, fmt.Errorf("failed to load attendance window: %w", err)
	}

	byDay := groupByDay(records)

	daily := make([]analytics.DailySummaryRow, 0, len(days))
	for _, day := range days {
		row := analytics.DailySummaryRow{Date: day.Format("2006-01-02")}
		for _, rec := range byDay[row.Date] {
			if rec.IsLate {
				row.Late++
			} else {
				row.Present++
			}
		}
		row.Absent = total - row.Present - row.Late
		if row.Absent < 0 {
			row.Absent = 0
		}
		daily = append(daily, row)
	}

	return analytics.AttendanceAnalyticsResponse{
		TotalEmployees: total,
		WindowDays:     windowDays,
		Daily:          daily,
	}, nil
}

// EmployeeDetails implements analytics.AnalyticsService.
func (a *AnalyticsServiceImpl) EmployeeDetails(ctx context.Context, search string) ([]analytics.EmployeeDetailRow, error) {
	employees, err := a.EmployeeRepository.ListActive(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	days := a.window(analytics.DefaultWindowDays)
	records, err := a.AttendanceReader.RecordsBetween(ctx, days[0], days[len(days)-1])
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance window: %w", err)
	}

	byEmployeeDay := make(map[string]attendance.AttendanceRecord, len(records))
	for _, rec := range records {
		byEmployeeDay[rec.EmployeeID+"|"+rec.WorkDay.Format("2006-01-02")] = rec
	}

	rows := make([]analytics.EmployeeDetailRow, 0, len(employees))
	for _, emp := range employees {
		row := analytics.EmployeeDetailRow{
			EmployeeID: emp.ID,
			FullName:   emp.FullName,
			NIC:        emp.NIC,
			Warehouse:  emp.Warehouse,
			Days:       make([]analytics.EmployeeDayDetail, 0, len(days)),
		}
		for _, day := range days {
			date := day.Format("2006-01-02")
			detail := analytics.EmployeeDayDetail{Date: date, Status: analytics.DayAbsent}
			if rec, ok := byEmployeeDay[emp.ID+"|"+date]; ok {
				detail.Status = analytics.DayPresent
				if rec.IsLate {
					detail.Status = analytics.DayLate
				}
				detail.CheckInTime = formatClock(rec.CheckIn)
				detail.CheckOutTime = formatClock(rec.CheckOut)
				detail.OvertimeHours = rec.OvertimeHours
			}
			row.Days = append(row.Days, detail)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// TodayStats implements analytics.AnalyticsService.
func (a *AnalyticsServiceImpl) TodayStats(ctx context.Context) (analytics.TodayStatsResponse, error) {
	total, err := a.EmployeeRepository.CountActive(ctx)
	if err != nil {
		return analytics.TodayStatsResponse{}, fmt.Errorf("failed to count employees: %w", err)
	}

	today := truncateToDay(a.now())
	records, err := a.AttendanceReader.RecordsBetween(ctx, today, today)
	if err != nil {
		return analytics.TodayStatsResponse{}, fmt.Errorf("failed to load today's attendance: %w", err)
	}

	absents := total - len(records)
	if absents < 0 {
		absents = 0
	}

	return analytics.TodayStatsResponse{
		TotalAttendance: len(records),
		TotalAbsents:    absents,
	}, nil
}

// WriteAttendancePDF implements analytics.AnalyticsService.
func (a *AnalyticsServiceImpl) WriteAttendancePDF(ctx context.Context, w io.Writer) error {
	summary, err := a.DailySummary(ctx, analytics.DefaultWindowDays)
	if err != nil {
		return err
	}

	details, err := a.EmployeeDetails(ctx, "")
	if err != nil {
		return err
	}

	return report.WriteAttendancePDF(summary, details, w)
}

// WriteAttendanceExcel implements analytics.AnalyticsService.
func (a *AnalyticsServiceImpl) WriteAttendanceExcel(ctx context.Context, w io.Writer) error {
	details, err := a.EmployeeDetails(ctx, "")
	if err != nil {
		return err
	}
	return report.WriteAttendanceExcel(details, w)
}

// window returns the trailing n calendar days ending today, oldest first.
func (a *AnalyticsServiceImpl) window(n int) []time.Time {
	today := truncateToDay(a.now())
	days := make([]time.Time, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, today.AddDate(0, 0, -i))
	}
	return days
}

func groupByDay(records []attendance.AttendanceRecord) map[string][]attendance.AttendanceRecord {
	byDay := make(map[string][]attendance.AttendanceRecord)
	for _, rec := range records {
		date := rec.WorkDay.Format("2006-01-02")
		byDay[date] = append(byDay[date], rec)
	}
	return byDay
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func formatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04:05")
	return &s
}
