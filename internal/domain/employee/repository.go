package employee

import "context"

// EmployeeRepository is the read-side view of the staff collaborator that
// attendance, leave and analytics depend on.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByNIC(ctx context.Context, nic string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// ListActive returns Active employees, optionally filtered by a
	// case-insensitive substring match on full name or NIC.
	ListActive(ctx context.Context, search string) ([]Employee, error)
	CountActive(ctx context.Context) (int, error)
}
