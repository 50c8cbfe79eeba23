package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"hrdocs/internal/model"
	"hrdocs/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = "id, storage_key, employee_id, file_name, url, content_type, size, uploaded_at"

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.DocumentRow) (*model.DocumentRow, error) {
	const q = `
		INSERT INTO documents (id, storage_key, employee_id, file_name, url, content_type, size, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.StorageKey,
		nullableString(doc.EmployeeID),
		doc.FileName,
		nullableString(doc.URL),
		doc.ContentType,
		doc.Size,
		doc.UploadedAt,
	)
	return scanDocument(row)
}

// FindByID fetches a single document row by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.DocumentRow, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	return scanDocument(r.db.QueryRowContext(ctx, q, id))
}

// ListPage returns at most limit rows matching the filter, most recent first
// within the page.
func (r *DocumentPostgres) ListPage(ctx context.Context, f repository.RowFilter, limit, offset int) ([]model.DocumentRow, error) {
	where, args := buildFilter(f)
	q := fmt.Sprintf(`
		SELECT `+documentColumns+`
		FROM documents
		%s
		ORDER BY uploaded_at DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.DocumentRow, 0)
	for rows.Next() {
		var d model.DocumentRow
		var employeeID, url sql.NullString
		if err := rows.Scan(
			&d.ID,
			&d.StorageKey,
			&employeeID,
			&d.FileName,
			&url,
			&d.ContentType,
			&d.Size,
			&d.UploadedAt,
		); err != nil {
			return nil, err
		}
		d.EmployeeID = employeeID.String
		d.URL = url.String
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Count returns the number of rows matching the filter.
func (r *DocumentPostgres) Count(ctx context.Context, f repository.RowFilter) (int, error) {
	where, args := buildFilter(f)
	q := fmt.Sprintf(`SELECT COUNT(*) FROM documents %s`, where)
	var total int
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// Delete removes a document row by ID. It does not return an error if the row does not exist.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

// buildFilter turns a RowFilter into a WHERE clause with positional args.
// Prefixes matches the first path segment of storage_key.
func buildFilter(f repository.RowFilter) (string, []any) {
	var conds []string
	var args []any

	if len(f.Prefixes) > 0 {
		ph := make([]string, len(f.Prefixes))
		for i, p := range f.Prefixes {
			args = append(args, p)
			ph[i] = fmt.Sprintf("$%d", len(args))
		}
		conds = append(conds, fmt.Sprintf("split_part(storage_key, '/', 1) IN (%s)", strings.Join(ph, ", ")))
	}
	if f.EmployeeID != "" {
		args = append(args, f.EmployeeID)
		conds = append(conds, fmt.Sprintf("employee_id = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func scanDocument(row *sql.Row) (*model.DocumentRow, error) {
	var d model.DocumentRow
	var employeeID, url sql.NullString
	if err := row.Scan(
		&d.ID,
		&d.StorageKey,
		&employeeID,
		&d.FileName,
		&url,
		&d.ContentType,
		&d.Size,
		&d.UploadedAt,
	); err != nil {
		return nil, err
	}
	d.EmployeeID = employeeID.String
	d.URL = url.String
	return &d, nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
