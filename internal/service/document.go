package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"hrdocs/internal/cache"
	"hrdocs/internal/folder"
	"hrdocs/internal/model"
	"hrdocs/internal/repository"
	"hrdocs/internal/storage"
)

// DocumentService defines the mutating use cases for documents. Every
// mutation invalidates the cached views of the affected company and
// employee so stale folder counts are never served longer than necessary.
type DocumentService interface {
	// Upload stores the content in object storage under the company prefix,
	// then saves metadata to the database. If the metadata save fails the
	// just-uploaded object is deleted (best-effort) to avoid orphaned files.
	// originalFilename is used only to extract the extension.
	Upload(ctx context.Context, r io.Reader, company, employeeID, originalFilename, contentType string, size int64) (*model.DocumentRow, error)

	// Get returns a single document row by its ID.
	Get(ctx context.Context, id string) (*model.DocumentRow, error)

	// Delete removes a document: object first, then metadata. A failed
	// object delete aborts the whole operation so metadata is never
	// removed for an object that might still exist. A missing object is
	// tolerated; the metadata record is removed regardless.
	Delete(ctx context.Context, id string) error
}

type documentService struct {
	store  storage.Storage
	repo   repository.DocumentRepository
	caches *cache.Manager
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, repo repository.DocumentRepository, caches *cache.Manager) DocumentService {
	return &documentService{store: store, repo: repo, caches: caches}
}

func (s *documentService) Upload(ctx context.Context, r io.Reader, company, employeeID, originalFilename, contentType string, size int64) (*model.DocumentRow, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if company == "" {
		return nil, ErrCompanyRequired
	}

	// Generate filename using UUID + extension
	ext := filepath.Ext(originalFilename)
	genName := uuid.New().String() + ext
	parts := []string{company}
	if employeeID != "" {
		parts = append(parts, employeeID)
	}
	parts = append(parts, genName)
	key := filepath.ToSlash(filepath.Join(parts...))

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, &StorageError{Op: "put", Key: key, Err: err}
	}

	doc := &model.DocumentRow{
		ID:          uuid.New().String(),
		StorageKey:  objInfo.Key,
		EmployeeID:  employeeID,
		FileName:    originalFilename,
		ContentType: objInfo.ContentType,
		Size:        objInfo.Size,
		UploadedAt:  time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		// Compensating delete: best-effort removal of the uploaded object.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	s.invalidateAffected(stored)
	return stored, nil
}

// Get returns a document by ID.
func (s *documentService) Get(ctx context.Context, id string) (*model.DocumentRow, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

// Delete removes a document from storage, then deletes its record.
func (s *documentService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	// Object first. Aborting here keeps metadata for an object that might
	// still exist; both-present beats the mixed states. An object already
	// gone (manual cleanup, earlier partial delete) is not an error: the
	// stale record still has to go.
	exists, err := s.store.Exists(ctx, doc.StorageKey)
	if err != nil {
		return &StorageError{Op: "stat", Key: doc.StorageKey, Err: err}
	}
	if exists {
		if err := s.store.Delete(ctx, doc.StorageKey); err != nil {
			return &StorageError{Op: "delete", Key: doc.StorageKey, Err: err}
		}
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateAffected(doc)
	s.caches.URLs.Invalidate(id)
	return nil
}

// invalidateAffected drops the cached views touched by a mutation: the
// document's company scope and, when present, its employee document list.
func (s *documentService) invalidateAffected(doc *model.DocumentRow) {
	s.caches.InvalidateCompany(folder.CanonicalCompany(doc.Prefix()))
	if doc.EmployeeID != "" {
		s.caches.Documents.Invalidate(doc.EmployeeID)
	}
}
