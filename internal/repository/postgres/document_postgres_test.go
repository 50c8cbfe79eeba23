package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"hrdocs/internal/model"
	"hrdocs/internal/repository"
)

var documentTestColumns = []string{"id", "storage_key", "employee_id", "file_name", "url", "content_type", "size", "uploaded_at"}

func TestDocumentPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	doc := &model.DocumentRow{
		ID:          "test-uuid",
		StorageKey:  "ACME/e1/contract.pdf",
		EmployeeID:  "e1",
		FileName:    "contract.pdf",
		ContentType: "application/pdf",
		Size:        123,
		UploadedAt:  now,
	}

	rows := sqlmock.NewRows(documentTestColumns).
		AddRow(doc.ID, doc.StorageKey, doc.EmployeeID, doc.FileName, nil, doc.ContentType, doc.Size, doc.UploadedAt)

	mock.ExpectQuery("INSERT INTO documents").
		WithArgs(doc.ID, doc.StorageKey, sqlmock.AnyArg(), doc.FileName, sqlmock.AnyArg(), doc.ContentType, doc.Size, doc.UploadedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, doc)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, doc.ID, result.ID)
	assert.Equal(t, "e1", result.EmployeeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(documentTestColumns).
			AddRow("test-id", "ACME/e1/file.pdf", "e1", "file.pdf", nil, "application/pdf", 100, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = ?").
			WithArgs("test-id").
			WillReturnRows(rows)

		doc, err := repo.FindByID(ctx, "test-id")

		assert.NoError(t, err)
		assert.NotNil(t, doc)
		assert.Equal(t, "test-id", doc.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		doc, err := repo.FindByID(ctx, "missing")

		assert.Error(t, err)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, doc)
	})

	t.Run("null employee_id and url scan to empty strings", func(t *testing.T) {
		rows := sqlmock.NewRows(documentTestColumns).
			AddRow("test-id", "GENERAL/notice.pdf", nil, "notice.pdf", nil, "application/pdf", 100, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = ?").
			WithArgs("test-id").
			WillReturnRows(rows)

		doc, err := repo.FindByID(ctx, "test-id")

		assert.NoError(t, err)
		assert.Empty(t, doc.EmployeeID)
		assert.Empty(t, doc.URL)
	})
}

func TestDocumentPostgres_ListPage(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("no filter", func(t *testing.T) {
		rows := sqlmock.NewRows(documentTestColumns).
			AddRow("d1", "ACME/e1/a.pdf", "e1", "a.pdf", nil, "application/pdf", 10, time.Now()).
			AddRow("d2", "ACME/e2/b.pdf", "e2", "b.pdf", nil, "application/pdf", 20, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM documents ORDER BY uploaded_at DESC").
			WithArgs(500, 0).
			WillReturnRows(rows)

		res, err := repo.ListPage(ctx, repository.RowFilter{}, 500, 0)

		assert.NoError(t, err)
		assert.Len(t, res, 2)
	})

	t.Run("prefix filter", func(t *testing.T) {
		rows := sqlmock.NewRows(documentTestColumns).
			AddRow("d1", "GOLDEN_CUBS/e1/a.pdf", "e1", "a.pdf", nil, "application/pdf", 10, time.Now())

		mock.ExpectQuery(`SELECT (.+) FROM documents WHERE split_part\(storage_key, '/', 1\) IN \(\$1, \$2\)`).
			WithArgs("GOLDEN_CUBS", "GOLDEN CUBS", 500, 0).
			WillReturnRows(rows)

		res, err := repo.ListPage(ctx, repository.RowFilter{Prefixes: []string{"GOLDEN_CUBS", "GOLDEN CUBS"}}, 500, 0)

		assert.NoError(t, err)
		assert.Len(t, res, 1)
	})

	t.Run("employee filter", func(t *testing.T) {
		rows := sqlmock.NewRows(documentTestColumns).
			AddRow("d1", "ACME/e1/a.pdf", "e1", "a.pdf", nil, "application/pdf", 10, time.Now())

		mock.ExpectQuery(`SELECT (.+) FROM documents WHERE employee_id = \$1`).
			WithArgs("e1", 500, 0).
			WillReturnRows(rows)

		res, err := repo.ListPage(ctx, repository.RowFilter{EmployeeID: "e1"}, 500, 0)

		assert.NoError(t, err)
		assert.Len(t, res, 1)
	})
}

func TestDocumentPostgres_Count(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM documents WHERE employee_id = \$1`).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	total, err := repo.Count(ctx, repository.RowFilter{EmployeeID: "e1"})

	assert.NoError(t, err)
	assert.Equal(t, 7, total)
}

func TestDocumentPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM documents WHERE id = ?").
		WithArgs("test-id").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(ctx, "test-id")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
