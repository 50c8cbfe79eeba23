package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hrdocs/internal/cache"
	"hrdocs/internal/folder"
	"hrdocs/internal/model"
	"hrdocs/internal/repository"
	"hrdocs/internal/signer"
	"hrdocs/internal/storage"
)

const (
	presignExpiry  = 15 * time.Minute
	presignTimeout = 5 * time.Second
)

// FolderListResult is the service-level DTO for folder listings. Degraded
// marks a stale or static fallback list served after a fetch failure —
// a visibly-stale folder list beats a blank error page.
type FolderListResult struct {
	Folders  []model.Folder `json:"data"`
	Degraded bool           `json:"degraded,omitempty"`
}

// FolderService exposes the aggregated folder views and presigned URL
// resolution, backed by the layered caches.
type FolderService interface {
	// ListCompanyFolders returns one folder per canonical company name.
	ListCompanyFolders(ctx context.Context) (*FolderListResult, error)

	// ListEmployeeFolders returns one folder per employee of a company.
	ListEmployeeFolders(ctx context.Context, companyName string) (*FolderListResult, error)

	// ListCompanyDocuments returns all rows under a company's prefixes.
	ListCompanyDocuments(ctx context.Context, companyName string) ([]model.DocumentRow, error)

	// ListEmployeeDocuments returns all rows recorded against an employee.
	ListEmployeeDocuments(ctx context.Context, employeeID string) ([]model.DocumentRow, error)

	// GetPresignedURL resolves a time-limited access URL for a document.
	// It never returns an unsigned URL for a private object.
	GetPresignedURL(ctx context.Context, documentID string) (string, error)

	// Invalidate drops one key or a whole cache scope.
	Invalidate(scope, key string)

	// ForceRefresh clears every cache and rebuilds the company folder list.
	ForceRefresh(ctx context.Context) (*FolderListResult, error)
}

type folderService struct {
	fetcher *folder.Fetcher
	docRepo repository.DocumentRepository
	empRepo repository.EmployeeRepository
	store   storage.Storage
	signer  signer.Signer // nil when no fallback signing endpoint is configured
	caches  *cache.Manager
	now     func() time.Time
}

// FolderServiceOption configures NewFolderService.
type FolderServiceOption func(*folderService)

// WithFolderClock overrides the service time source, for tests.
func WithFolderClock(now func() time.Time) FolderServiceOption {
	return func(s *folderService) { s.now = now }
}

// NewFolderService constructs a FolderService. sgn may be nil, disabling
// the secondary signing path.
func NewFolderService(
	fetcher *folder.Fetcher,
	docRepo repository.DocumentRepository,
	empRepo repository.EmployeeRepository,
	store storage.Storage,
	sgn signer.Signer,
	caches *cache.Manager,
	opts ...FolderServiceOption,
) FolderService {
	s := &folderService{
		fetcher: fetcher,
		docRepo: docRepo,
		empRepo: empRepo,
		store:   store,
		signer:  sgn,
		caches:  caches,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *folderService) ListCompanyFolders(ctx context.Context) (*FolderListResult, error) {
	folders, err := s.caches.Companies.GetOrCompute(ctx, cache.CompanyFoldersKey, func(ctx context.Context) ([]model.Folder, error) {
		rows, err := s.fetcher.FetchAll(ctx)
		if err != nil {
			return nil, err
		}
		return folder.BuildCompanyFolders(rows, s.now()), nil
	})
	if err != nil {
		// Degraded success: a previously cached list, however stale, then
		// the static fallback. Hard failure only when neither exists.
		if stale, ok := s.caches.Companies.GetStale(cache.CompanyFoldersKey); ok {
			return &FolderListResult{Folders: stale, Degraded: true}, nil
		}
		return &FolderListResult{Folders: folder.FallbackFolders(s.now()), Degraded: true}, nil
	}
	return &FolderListResult{Folders: folders}, nil
}

func (s *folderService) ListEmployeeFolders(ctx context.Context, companyName string) (*FolderListResult, error) {
	if companyName == "" {
		return nil, ErrCompanyRequired
	}
	// Canonicalize before keying the cache: drifted spellings share one
	// entry, and InvalidateCompany (which canonicalizes) always matches.
	companyName = folder.CanonicalCompany(companyName)
	folders, err := s.caches.Employees.GetOrCompute(ctx, companyName, func(ctx context.Context) ([]model.Folder, error) {
		rows, err := s.companyRows(ctx, companyName)
		if err != nil {
			return nil, err
		}
		names, err := s.employeeNames(ctx, companyName)
		if err != nil {
			return nil, err
		}
		return folder.BuildEmployeeFolders(companyName, rows, names, s.now()), nil
	})
	if err != nil {
		if stale, ok := s.caches.Employees.GetStale(companyName); ok {
			return &FolderListResult{Folders: stale, Degraded: true}, nil
		}
		return nil, err
	}
	return &FolderListResult{Folders: folders}, nil
}

func (s *folderService) ListCompanyDocuments(ctx context.Context, companyName string) ([]model.DocumentRow, error) {
	if companyName == "" {
		return nil, ErrCompanyRequired
	}
	return s.companyRows(ctx, folder.CanonicalCompany(companyName))
}

func (s *folderService) ListEmployeeDocuments(ctx context.Context, employeeID string) ([]model.DocumentRow, error) {
	if employeeID == "" {
		return nil, ErrIDRequired
	}
	return s.caches.Documents.GetOrCompute(ctx, employeeID, func(ctx context.Context) ([]model.DocumentRow, error) {
		return s.fetcher.FetchByEmployee(ctx, employeeID)
	})
}

// GetPresignedURL resolution order, short-circuiting on first success:
// cache hit, coalesced in-flight request, structurally signed URL already
// on the record, object-store presign, remote signer fallback. Exhausting
// all signing attempts yields a *SigningError.
func (s *folderService) GetPresignedURL(ctx context.Context, documentID string) (string, error) {
	if documentID == "" {
		return "", ErrIDRequired
	}
	return s.caches.URLs.GetOrCompute(ctx, documentID, func(ctx context.Context) (string, error) {
		doc, err := s.docRepo.FindByID(ctx, documentID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return "", ErrNotFound
			}
			return "", &folder.DataSourceError{Op: "find document", Err: err}
		}

		if IsSignedURL(doc.URL) {
			return doc.URL, nil
		}

		presignCtx, cancel := context.WithTimeout(ctx, presignTimeout)
		u, presignErr := s.store.PresignGet(presignCtx, doc.StorageKey, presignExpiry)
		cancel()
		if presignErr == nil {
			return u, nil
		}

		if s.signer != nil {
			if u, err := s.signer.Sign(ctx, doc.StorageKey); err == nil {
				return u, nil
			}
		}
		return "", &SigningError{DocumentID: documentID, Err: presignErr}
	})
}

func (s *folderService) Invalidate(scope, key string) {
	s.caches.Invalidate(scope, key)
}

func (s *folderService) ForceRefresh(ctx context.Context) (*FolderListResult, error) {
	s.caches.Reset()
	return s.ListCompanyFolders(ctx)
}

// companyRows reads a company's full row set through the rows cache.
// companyName must already be canonical.
func (s *folderService) companyRows(ctx context.Context, companyName string) ([]model.DocumentRow, error) {
	return s.caches.Rows.GetOrCompute(ctx, companyName, func(ctx context.Context) ([]model.DocumentRow, error) {
		return s.fetcher.FetchByCompany(ctx, companyName)
	})
}

// employeeNames loads the company's relational employee names, keyed by ID.
func (s *folderService) employeeNames(ctx context.Context, companyName string) (map[string]string, error) {
	emps, err := s.empRepo.ListByCompany(ctx, companyName)
	if err != nil {
		return nil, &folder.DataSourceError{Op: "list employees", Err: err}
	}
	names := make(map[string]string, len(emps))
	for _, e := range emps {
		names[e.ID] = e.Name
	}
	return names, nil
}
