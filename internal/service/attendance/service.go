package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/warelogix/warehouse-backend-go/internal/domain/attendance"
	"github.com/warelogix/warehouse-backend-go/internal/domain/employee"
	"github.com/warelogix/warehouse-backend-go/internal/pkg/workday"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	policy workday.Policy
	now    func() time.Time
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	policy workday.Policy,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		policy:               policy,
		now:                  time.Now,
	}
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	now := a.now()
	day := workDayOf(now)

	rec := attendance.AttendanceRecord{
		EmployeeID: employeeID,
		WorkDay:    day,
		CheckIn:    &now,
		IsLate:     a.policy.IsLate(now, now),
	}

	created, err := a.AttendanceRepository.CreateCheckIn(ctx, rec)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.NewAttendanceResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	now := a.now()
	day := workDayOf(now)

	rec, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		if err == attendance.ErrRecordNotFound {
			return attendance.AttendanceResponse{}, attendance.ErrNoCheckInFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	if rec.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	closed, err := a.AttendanceRepository.CloseCheckOut(ctx, rec.ID, now, a.policy.Overtime(now, now))
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.NewAttendanceResponse(closed), nil
}

// MarkByMode implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MarkByMode(ctx context.Context, req attendance.MarkRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByNIC(ctx, req.NIC)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !emp.IsActive() {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeInactive
	}

	switch attendance.MarkMode(req.Mode) {
	case attendance.ModeCheckIn:
		return a.CheckIn(ctx, emp.ID)
	case attendance.ModeCheckOut:
		return a.CheckOut(ctx, emp.ID)
	default:
		return attendance.AttendanceResponse{}, attendance.ErrInvalidMode
	}
}

// AutoCloseDay implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) AutoCloseDay(ctx context.Context) (int, error) {
	now := a.now()
	day := workDayOf(now)

	closed, err := a.AttendanceRepository.CloseOpenForDay(ctx, day, a.policy.EndOfWork(now))
	if err != nil {
		return 0, fmt.Errorf("failed to close open records: %w", err)
	}

	return closed, nil
}

// workDayOf truncates an instant to midnight of its calendar day.
func workDayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
