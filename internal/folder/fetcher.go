package folder

import (
	"context"

	"hrdocs/internal/config"
	"hrdocs/internal/model"
	"hrdocs/internal/repository"
)

const (
	defaultPageSize = 500
	defaultMaxPages = 20
)

// Fetcher reads the full row set for a scope past the relational store's
// single-request row cap by issuing successive range-bounded pages.
type Fetcher struct {
	repo     repository.DocumentRepository
	pageSize int
	maxPages int
}

// NewFetcher creates a Fetcher bounded by cfg. Non-positive values fall
// back to the defaults.
func NewFetcher(repo repository.DocumentRepository, cfg config.FetchConfig) *Fetcher {
	f := &Fetcher{repo: repo, pageSize: cfg.PageSize, maxPages: cfg.MaxPages}
	if f.pageSize <= 0 {
		f.pageSize = defaultPageSize
	}
	if f.maxPages <= 0 {
		f.maxPages = defaultMaxPages
	}
	return f
}

// Fetch accumulates pages until one comes back short (end of data) or the
// page safety cap is hit. Result order is the concatenation of pages in
// request order; recency ordering holds per page, not globally.
//
// Any page error aborts the whole fetch: partial progress is discarded and
// a *DataSourceError is returned.
func (f *Fetcher) Fetch(ctx context.Context, filter repository.RowFilter) ([]model.DocumentRow, error) {
	all := make([]model.DocumentRow, 0, f.pageSize)
	for page := 0; page < f.maxPages; page++ {
		rows, err := f.repo.ListPage(ctx, filter, f.pageSize, page*f.pageSize)
		if err != nil {
			return nil, &DataSourceError{Op: "list documents", Err: err}
		}
		all = append(all, rows...)
		if len(rows) < f.pageSize {
			break
		}
	}
	return all, nil
}

// FetchAll reads every document row.
func (f *Fetcher) FetchAll(ctx context.Context) ([]model.DocumentRow, error) {
	return f.Fetch(ctx, repository.RowFilter{})
}

// FetchByCompany reads all rows whose storage-key prefix resolves to the
// company. Companies in the alias table have a complete prefix enumeration
// and filter in the database; any other company matches by resolved
// canonical name, so every prefix spelling the folder views merge stays
// reachable through the folder they produce.
func (f *Fetcher) FetchByCompany(ctx context.Context, companyName string) ([]model.DocumentRow, error) {
	canonical := CanonicalCompany(companyName)
	if prefixes, known := AliasPrefixes(canonical); known {
		return f.Fetch(ctx, repository.RowFilter{Prefixes: prefixes})
	}

	rows, err := f.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]model.DocumentRow, 0, len(rows))
	for _, row := range rows {
		if CanonicalCompany(row.Prefix()) == canonical {
			matched = append(matched, row)
		}
	}
	return matched, nil
}

// FetchByEmployee reads all rows recorded against one employee.
func (f *Fetcher) FetchByEmployee(ctx context.Context, employeeID string) ([]model.DocumentRow, error) {
	return f.Fetch(ctx, repository.RowFilter{EmployeeID: employeeID})
}
