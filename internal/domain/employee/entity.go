package employee

import "time"

type Role string

const (
	RoleStaff   Role = "staff"
	RoleManager Role = "manager"
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Employee is owned by the staff/identity side of the system; attendance
// and leave hold non-owning references to it by id or NIC.
type Employee struct {
	ID           string
	FullName     string
	NIC          string
	Email        string
	PasswordHash string
	Role         Role
	Status       Status
	Warehouse    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e Employee) IsActive() bool {
	return e.Status == StatusActive
}
