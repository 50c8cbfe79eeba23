package postgres

import (
	"context"
	"database/sql"

	"hrdocs/internal/model"
	"hrdocs/internal/repository"
)

// EmployeePostgres is a PostgreSQL implementation of repository.EmployeeRepository.
type EmployeePostgres struct {
	db *sql.DB
}

// NewEmployeePostgres creates a new EmployeePostgres repository.
func NewEmployeePostgres(db *sql.DB) *EmployeePostgres {
	return &EmployeePostgres{db: db}
}

var _ repository.EmployeeRepository = (*EmployeePostgres)(nil)

// FindByID fetches a single employee by ID.
func (r *EmployeePostgres) FindByID(ctx context.Context, id string) (*model.Employee, error) {
	const q = `SELECT id, company, name FROM employees WHERE id = $1`
	var e model.Employee
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&e.ID, &e.Company, &e.Name); err != nil {
		return nil, err
	}
	return &e, nil
}

// ListByCompany returns all employees of a company ordered by name.
func (r *EmployeePostgres) ListByCompany(ctx context.Context, company string) ([]model.Employee, error) {
	const q = `SELECT id, company, name FROM employees WHERE company = $1 ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q, company)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Employee, 0)
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.ID, &e.Company, &e.Name); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
