package leave

import "context"

type LeaveRequestRepository interface {
	// WithinTransaction runs fn with a context whose repository calls all
	// share one database transaction. fn returning an error rolls back.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	// GetByID returns ErrLeaveRequestNotFound when no such request exists.
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// GetByIDForUpdate is GetByID with the row locked until the
	// surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id string) (LeaveRequest, error)

	// Update overwrites the editable fields (type, dates, reason, year).
	Update(ctx context.Context, req LeaveRequest) error

	Delete(ctx context.Context, id string) error

	// ListByEmployee returns the employee's requests, newest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)

	// ListAll returns every request with employee names joined, newest
	// first.
	ListAll(ctx context.Context) ([]LeaveRequest, error)

	// ListApprovedByEmployeeYear returns the Approved requests backing the
	// yearly balance computation.
	ListApprovedByEmployeeYear(ctx context.Context, employeeID string, year int) ([]LeaveRequest, error)

	UpdateStatus(ctx context.Context, id string, status LeaveStatus) error
}
