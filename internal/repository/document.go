package repository

import (
	"context"

	"hrdocs/internal/model"
)

// RowFilter narrows a document query to a scope. Zero value means all rows.
// Prefixes matches the first path segment of storage_key against any of the
// given raw prefixes (a company plus its historical aliases). EmployeeID
// matches the employee_id column.
type RowFilter struct {
	Prefixes   []string
	EmployeeID string
}

// DocumentRepository defines data access for document rows using SQL only.
// No business logic here — strictly persistence operations.
//
// The backing store caps single-request row counts, so ListPage is
// range-bounded; callers needing the full row set paginate (see folder.Fetcher).
type DocumentRepository interface {
	// Create inserts a new document row and returns the stored record.
	Create(ctx context.Context, row *model.DocumentRow) (*model.DocumentRow, error)

	// FindByID returns a document row by its ID.
	FindByID(ctx context.Context, id string) (*model.DocumentRow, error)

	// ListPage returns at most limit rows matching the filter, ordered by
	// uploaded_at descending within the page.
	ListPage(ctx context.Context, f RowFilter, limit, offset int) ([]model.DocumentRow, error)

	// Count returns the number of rows matching the filter.
	Count(ctx context.Context, f RowFilter) (int, error)

	// Delete removes a document row by ID. It returns nil if the row was
	// deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
