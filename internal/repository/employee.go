package repository

import (
	"context"

	"hrdocs/internal/model"
)

// EmployeeRepository provides read access to employee records. The Name
// column is the priority-1 input for display-name resolution.
type EmployeeRepository interface {
	// FindByID returns an employee by ID.
	FindByID(ctx context.Context, id string) (*model.Employee, error)

	// ListByCompany returns all employees of a company.
	ListByCompany(ctx context.Context, company string) ([]model.Employee, error)
}
