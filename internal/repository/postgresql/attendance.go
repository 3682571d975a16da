package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/warelogix/warehouse-backend-go/internal/domain/analytics"
	"github.com/warelogix/warehouse-backend-go/internal/domain/attendance"
	"github.com/warelogix/warehouse-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// NewAttendanceReader exposes the same table through the read-side
// interface the analytics aggregations consume.
func NewAttendanceReader(db *database.DB) analytics.AttendanceReader {
	return &attendanceRepository{db: db}
}

// CreateCheckIn implements attendance.AttendanceRepository.
//
// The insert is conditional on the unique (employee_id, work_day) index:
// losing the race means zero rows returned, never a duplicate.
func (a *attendanceRepository) CreateCheckIn(ctx context.Context, rec attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			employee_id, work_day, check_in, is_late, overtime_hours
		) VALUES (
			$1, $2, $3, $4, $5
		)
		ON CONFLICT (employee_id, work_day) DO NOTHING
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID,
		rec.WorkDay,
		rec.CheckIn,
		rec.IsLate,
		rec.OvertimeHours,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.AttendanceRecord{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to create check-in: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, day time.Time) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, work_day, check_in, check_out,
			   is_late, overtime_hours, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1
		  AND work_day = $2
		LIMIT 1
	`

	var rec attendance.AttendanceRecord
	err := q.QueryRow(ctx, query, employeeID, day).Scan(
		&rec.ID, &rec.EmployeeID, &rec.WorkDay, &rec.CheckIn, &rec.CheckOut,
		&rec.IsLate, &rec.OvertimeHours, &rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.AttendanceRecord{}, attendance.ErrRecordNotFound
		}
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return rec, nil
}

// CloseCheckOut implements attendance.AttendanceRepository.
//
// The update is qualified on check_out IS NULL so a concurrent close makes
// this one match zero rows instead of overwriting.
func (a *attendanceRepository) CloseCheckOut(ctx context.Context, id string, checkOut time.Time, overtimeHours float64) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET check_out = $2,
			overtime_hours = $3,
			updated_at = NOW()
		WHERE id = $1
		  AND check_out IS NULL
		RETURNING id, employee_id, work_day, check_in, check_out,
				  is_late, overtime_hours, created_at, updated_at
	`

	var rec attendance.AttendanceRecord
	err := q.QueryRow(ctx, query, id, checkOut, overtimeHours).Scan(
		&rec.ID, &rec.EmployeeID, &rec.WorkDay, &rec.CheckIn, &rec.CheckOut,
		&rec.IsLate, &rec.OvertimeHours, &rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.AttendanceRecord{}, attendance.ErrAlreadyCheckedOut
		}
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to close check-out: %w", err)
	}

	return rec, nil
}

// CloseOpenForDay implements attendance.AttendanceRepository.
func (a *attendanceRepository) CloseOpenForDay(ctx context.Context, day time.Time, endOfWork time.Time) (int, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET check_out = $2,
			overtime_hours = 0,
			updated_at = NOW()
		WHERE work_day = $1
		  AND check_in IS NOT NULL
		  AND check_out IS NULL
	`

	tag, err := q.Exec(ctx, query, day, endOfWork)
	if err != nil {
		return 0, fmt.Errorf("failed to close open attendances: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// RecordsBetween implements analytics.AttendanceReader.
func (a *attendanceRepository) RecordsBetween(ctx context.Context, from, to time.Time) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, work_day, check_in, check_out,
			   is_late, overtime_hours, created_at, updated_at
		FROM attendance_records
		WHERE work_day >= $1
		  AND work_day <= $2
		ORDER BY work_day, employee_id
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		var rec attendance.AttendanceRecord
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.WorkDay, &rec.CheckIn, &rec.CheckOut,
			&rec.IsLate, &rec.OvertimeHours, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}
