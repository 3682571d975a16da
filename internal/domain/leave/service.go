package leave

import (
	"context"
	"io"
)

type LeaveService interface {
	// Create files a new request for the employee; an attachment, when
	// present, is uploaded through the storage collaborator first.
	Create(ctx context.Context, employeeID string, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)

	// Update rewrites a Pending request. Only the owner may update.
	Update(ctx context.Context, id, employeeID string, req UpdateLeaveRequestRequest) (LeaveRequestResponse, error)

	// Delete removes a Pending request. Only the owner may delete.
	Delete(ctx context.Context, id, employeeID string) error

	ListMine(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error)

	// Balance sums the inclusive day spans of the year's Approved
	// requests against the annual quota.
	Balance(ctx context.Context, employeeID string, year int) (BalanceResponse, error)

	ListAll(ctx context.Context) ([]LeaveRequestResponse, error)

	// UpdateStatus moves a Pending request to Approved or Rejected.
	UpdateStatus(ctx context.Context, id string, status string) (LeaveRequestResponse, error)

	// WriteReport renders the employee's leave history as a PDF to w.
	// Returns ErrNoRequestsFound when the employee has no requests; in
	// that case nothing has been written to w.
	WriteReport(ctx context.Context, employeeID string, w io.Writer) error
}
