package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/warelogix/warehouse-backend-go/internal/domain/leave"
	"github.com/warelogix/warehouse-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

// Create implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_requests (
			employee_id, leave_type, start_date, end_date, reason,
			attachment_url, status, year
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID,
		req.LeaveType,
		req.StartDate,
		req.EndDate,
		req.Reason,
		req.AttachmentURL,
		req.Status,
		req.Year,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// WithinTransaction implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return WithTransaction(ctx, l.db, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, "tx", tx))
	})
}

// GetByID implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return l.getByID(ctx, id, "")
}

// GetByIDForUpdate implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) GetByIDForUpdate(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return l.getByID(ctx, id, "FOR UPDATE")
}

func (l *leaveRequestRepository) getByID(ctx context.Context, id string, locking string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, employee_id, leave_type, start_date, end_date, reason,
			   attachment_url, status, year, created_at, updated_at
		FROM leave_requests
		WHERE id = $1
	` + locking

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate, &req.Reason,
		&req.AttachmentURL, &req.Status, &req.Year, &req.CreatedAt, &req.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

// Update implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) Update(ctx context.Context, req leave.LeaveRequest) error {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_requests
		SET leave_type = $2,
			start_date = $3,
			end_date = $4,
			reason = $5,
			attachment_url = $6,
			year = $7,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		req.ID,
		req.LeaveType,
		req.StartDate,
		req.EndDate,
		req.Reason,
		req.AttachmentURL,
		req.Year,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}

// Delete implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, l.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, employee_id, leave_type, start_date, end_date, reason,
			   attachment_url, status, year, created_at, updated_at
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequests(rows, false)
}

// ListAll implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) ListAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date, lr.reason,
			   lr.attachment_url, lr.status, lr.year, lr.created_at, lr.updated_at,
			   e.full_name
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		ORDER BY lr.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequests(rows, true)
}

// ListApprovedByEmployeeYear implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) ListApprovedByEmployeeYear(ctx context.Context, employeeID string, year int) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, employee_id, leave_type, start_date, end_date, reason,
			   attachment_url, status, year, created_at, updated_at
		FROM leave_requests
		WHERE employee_id = $1
		  AND year = $2
		  AND status = $3
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, employeeID, year, leave.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave requests: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequests(rows, false)
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) UpdateStatus(ctx context.Context, id string, status leave.LeaveStatus) error {
	q := GetQuerier(ctx, l.db)

	tag, err := q.Exec(ctx, `
		UPDATE leave_requests
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}

func scanLeaveRequests(rows pgx.Rows, withEmployeeName bool) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		dest := []any{
			&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate, &req.Reason,
			&req.AttachmentURL, &req.Status, &req.Year, &req.CreatedAt, &req.UpdatedAt,
		}
		if withEmployeeName {
			dest = append(dest, &req.EmployeeName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}

	return requests, nil
}
