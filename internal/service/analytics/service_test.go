package analytics

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warelogix/warehouse-backend-go/internal/domain/analytics"
	"github.com/warelogix/warehouse-backend-go/internal/domain/attendance"
	"github.com/warelogix/warehouse-backend-go/internal/domain/employee"
)

type fakeReader struct {
	records []attendance.AttendanceRecord
}

func (f *fakeReader) RecordsBetween(ctx context.Context, from, to time.Time) ([]attendance.AttendanceRecord, error) {
	var out []attendance.AttendanceRecord
	for _, rec := range f.records {
		if !rec.WorkDay.Before(from) && !rec.WorkDay.After(to) {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
	listErr   error
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByNIC(ctx context.Context, nic string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context, search string) ([]employee.Employee, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.employees, nil
}

func (f *fakeEmployeeRepo) CountActive(ctx context.Context) (int, error) {
	return len(f.employees), nil
}

var testNow = time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return time.Date(2024, 3, 8+offset, 0, 0, 0, 0, time.UTC)
}

func record(employeeID string, workDay time.Time, late bool, checkedOut bool) attendance.AttendanceRecord {
	in := workDay.Add(8 * time.Hour)
	rec := attendance.AttendanceRecord{
		EmployeeID: employeeID,
		WorkDay:    workDay,
		CheckIn:    &in,
		IsLate:     late,
	}
	if checkedOut {
		out := workDay.Add(17 * time.Hour)
		rec.CheckOut = &out
	}
	return rec
}

func activeEmployees(n int) []employee.Employee {
	out := make([]employee.Employee, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, employee.Employee{
			ID:       fmt.Sprintf("emp-%d", i+1),
			FullName: fmt.Sprintf("Employee %d", i+1),
			NIC:      fmt.Sprintf("90000000%dV", i),
			Status:   employee.StatusActive,
		})
	}
	return out
}

func newTestService(employees []employee.Employee, records []attendance.AttendanceRecord) *AnalyticsServiceImpl {
	svc := NewAnalyticsService(&fakeReader{records: records}, &fakeEmployeeRepo{employees: employees})
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestDailySummary_SplitsPresentLateAbsent(t *testing.T) {
	// 10 active employees: today 6 on time, 2 late, 2 no record
	var records []attendance.AttendanceRecord
	for i := 1; i <= 6; i++ {
		records = append(records, record(fmt.Sprintf("emp-%d", i), day(0), false, true))
	}
	records = append(records,
		record("emp-7", day(0), true, true),
		record("emp-8", day(0), true, true),
	)

	svc := newTestService(activeEmployees(10), records)
	summary, err := svc.DailySummary(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, 10, summary.TotalEmployees)
	assert.Equal(t, 5, summary.WindowDays)
	require.Len(t, summary.Daily, 5)

	today := summary.Daily[4]
	assert.Equal(t, "2024-03-08", today.Date)
	assert.Equal(t, 6, today.Present)
	assert.Equal(t, 2, today.Late)
	assert.Equal(t, 2, today.Absent)
}

func TestDailySummary_WindowIsOldestFirst(t *testing.T) {
	svc := newTestService(activeEmployees(2), nil)

	summary, err := svc.DailySummary(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, analytics.DefaultWindowDays, summary.WindowDays)
	assert.Equal(t, "2024-03-04", summary.Daily[0].Date)
	assert.Equal(t, "2024-03-08", summary.Daily[4].Date)

	// No records at all: everyone is absent every day
	for _, row := range summary.Daily {
		assert.Zero(t, row.Present)
		assert.Zero(t, row.Late)
		assert.Equal(t, 2, row.Absent)
	}
}

func TestEmployeeDetails_BuildsDayGrid(t *testing.T) {
	records := []attendance.AttendanceRecord{
		record("emp-1", day(0), false, true),
		record("emp-1", day(-1), true, false),
	}

	svc := newTestService(activeEmployees(1), records)
	rows, err := svc.EmployeeDetails(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Len(t, rows[0].Days, analytics.DefaultWindowDays)

	grid := rows[0].Days
	assert.Equal(t, analytics.DayAbsent, grid[0].Status)
	assert.Equal(t, analytics.DayLate, grid[3].Status)
	assert.Equal(t, analytics.DayPresent, grid[4].Status)

	require.NotNil(t, grid[4].CheckInTime)
	assert.Equal(t, "08:00:00", *grid[4].CheckInTime)
	require.NotNil(t, grid[4].CheckOutTime)
	assert.Nil(t, grid[3].CheckOutTime)
}

func TestTodayStats(t *testing.T) {
	records := []attendance.AttendanceRecord{
		record("emp-1", day(0), false, false),
		record("emp-2", day(0), true, false),
		record("emp-3", day(-1), false, true), // yesterday, excluded
	}

	svc := newTestService(activeEmployees(5), records)
	stats, err := svc.TodayStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalAttendance)
	assert.Equal(t, 3, stats.TotalAbsents)
}

func TestWriteAttendancePDF(t *testing.T) {
	svc := newTestService(activeEmployees(3), []attendance.AttendanceRecord{
		record("emp-1", day(0), false, true),
	})

	var buf bytes.Buffer
	require.NoError(t, svc.WriteAttendancePDF(context.Background(), &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestWriteAttendancePDF_IncludesEmployeeGrid(t *testing.T) {
	records := []attendance.AttendanceRecord{record("emp-1", day(0), false, true)}

	var withDetails bytes.Buffer
	require.NoError(t, newTestService(activeEmployees(3), records).WriteAttendancePDF(context.Background(), &withDetails))

	var withoutDetails bytes.Buffer
	require.NoError(t, newTestService(nil, records).WriteAttendancePDF(context.Background(), &withoutDetails))

	// The per-employee day grids add pages worth of content
	assert.Greater(t, withDetails.Len(), withoutDetails.Len())
}

func TestWriteAttendancePDF_FailsWhenEmployeeLookupFails(t *testing.T) {
	svc := NewAnalyticsService(&fakeReader{}, &fakeEmployeeRepo{listErr: fmt.Errorf("connection reset")})
	svc.now = func() time.Time { return testNow }

	var buf bytes.Buffer
	err := svc.WriteAttendancePDF(context.Background(), &buf)
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestWriteAttendanceExcel(t *testing.T) {
	svc := newTestService(activeEmployees(3), []attendance.AttendanceRecord{
		record("emp-1", day(0), false, true),
	})

	var buf bytes.Buffer
	require.NoError(t, svc.WriteAttendanceExcel(context.Background(), &buf))
	// xlsx files are zip archives
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("PK")))
}
