package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/warelogix/warehouse-backend-go/internal/domain/employee"
	"github.com/warelogix/warehouse-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, full_name, nic, email, password_hash, role, status, warehouse,
	created_at, updated_at
`

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return e.getByField(ctx, "id", id)
}

// GetByNIC implements employee.EmployeeRepository.
func (e *employeeRepository) GetByNIC(ctx context.Context, nic string) (employee.Employee, error) {
	return e.getByField(ctx, "nic", nic)
}

// GetByEmail implements employee.EmployeeRepository.
func (e *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return e.getByField(ctx, "email", email)
}

func (e *employeeRepository) getByField(ctx context.Context, field string, value string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE %s = $1`, employeeColumns, field)

	var emp employee.Employee
	err := q.QueryRow(ctx, query, value).Scan(
		&emp.ID, &emp.FullName, &emp.NIC, &emp.Email, &emp.PasswordHash,
		&emp.Role, &emp.Status, &emp.Warehouse, &emp.CreatedAt, &emp.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by %s: %w", field, err)
	}

	return emp, nil
}

// ListActive implements employee.EmployeeRepository.
func (e *employeeRepository) ListActive(ctx context.Context, search string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`
		SELECT %s FROM employees
		WHERE status = $1
		  AND ($2 = '' OR full_name ILIKE '%%' || $2 || '%%' OR nic ILIKE '%%' || $2 || '%%')
		ORDER BY full_name
	`, employeeColumns)

	rows, err := q.Query(ctx, query, employee.StatusActive, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.FullName, &emp.NIC, &emp.Email, &emp.PasswordHash,
			&emp.Role, &emp.Status, &emp.Warehouse, &emp.CreatedAt, &emp.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

// CountActive implements employee.EmployeeRepository.
func (e *employeeRepository) CountActive(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, e.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE status = $1`, employee.StatusActive).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}

	return count, nil
}
